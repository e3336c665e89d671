package job

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not created through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrChecklistIncomplete is returned by Complete while any checklist item is unchecked.
	ErrChecklistIncomplete = errors.New("checklist is incomplete")

	// ErrChecklistItemNotFound is returned when an item id does not belong to the job.
	ErrChecklistItemNotFound = errors.New("checklist item not found")

	// ErrCompletedAtMismatch is returned by RestoreJob when completedAt is set on a job
	// that is not completed, or missing on one that is.
	ErrCompletedAtMismatch = errs.NewValueIsInvalidError("completed at must be set iff the job is completed")
)

// Job is the aggregate root for a single turnover clean. It owns its checklist:
// items are created with the job, never added or removed afterwards, and are
// only changed through the job.
//
// Job follows these invariants:
//   - Must have valid job and property identifiers
//   - The booking window must end after it starts
//   - A cleaner is assigned exactly when the status is not Open
//   - completedAt is set exactly when the status is Completed
//   - Completed requires every checklist item to be checked
//   - Can only be created through NewJob or RestoreJob
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// propertyID is the property being cleaned
	propertyID kernel.UUID

	// window is the guest booking the clean belongs to
	window BookingWindow

	// status is the current lifecycle state
	status Status

	// cleanerID is the claiming cleaner (nil while open)
	cleanerID *kernel.UUID

	createdAt   time.Time
	completedAt *time.Time

	// checklist keeps insertion order
	checklist []*ChecklistItem

	guard guard.ConstructorGuard
}

// NewJob creates an open job with one unchecked item per checklist text, in order.
// An empty checklist is allowed.
//
// Parameters:
//   - id: Unique identifier for the job
//   - propertyID: The property being cleaned
//   - window: The guest booking the clean follows
//   - checklist: Item texts; every text must be non-blank
//   - createdAt: Creation time, stored in UTC
//
// Returns:
//   - *Job: An Open job with no cleaner
//   - error: Every validation failure joined together
//
// Example:
//
//	window, _ := job.NewBookingWindow(checkout, checkin)
//	j, err := job.NewJob(kernel.NewUUID(), propertyID, window,
//	    []string{"Strip beds", "Clean bathroom"}, clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewJob(
	id kernel.UUID,
	propertyID kernel.UUID,
	window BookingWindow,
	checklist []string,
	createdAt time.Time,
) (*Job, error) {
	items := make([]*ChecklistItem, 0, len(checklist))
	var itemErrs []error
	for _, text := range checklist {
		item, err := NewChecklistItem(kernel.NewUUID(), text)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	return RestoreJob(id, propertyID, window, Open, nil, createdAt, nil, items)
}

// RestoreJob rebuilds a job from persisted state and re-checks every invariant.
// Repositories use it when loading; domain code creates jobs through NewJob.
//
// Returns:
//   - *Job: The rebuilt job
//   - error: Joined validation errors, including ErrCompletedAtMismatch and the
//     status/cleaner consistency check
func RestoreJob(
	id kernel.UUID,
	propertyID kernel.UUID,
	window BookingWindow,
	status Status,
	cleanerID *kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
	checklist []*ChecklistItem,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setPropertyID(propertyID),
		j.setWindow(window),
		j.setStatus(status, cleanerID, completedAt),
		j.setCreatedAt(createdAt),
		j.setChecklist(checklist),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job was built through NewJob or RestoreJob.
//
// Returns:
//   - nil if the job is valid
//   - ErrJobIsNotConstructed for a nil or zero-value Job
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by their identifiers. A nil other is never equal.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// PropertyID returns the property the job belongs to.
func (j *Job) PropertyID() kernel.UUID {
	return j.propertyID
}

// Window returns the booking window the clean follows.
func (j *Job) Window() BookingWindow {
	return j.window
}

// Status returns the current lifecycle state.
func (j *Job) Status() Status {
	return j.status
}

// Cleaner returns the claiming cleaner's ID or nil while the job is open.
func (j *Job) Cleaner() *kernel.UUID {
	if j.cleanerID == nil {
		return nil
	}
	id := *j.cleanerID
	return &id
}

// CreatedAt returns the creation time in UTC.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// CompletedAt returns a copy of the completion time, or nil until the job is completed.
func (j *Job) CompletedAt() *time.Time {
	if j.completedAt == nil {
		return nil
	}
	at := *j.completedAt
	return &at
}

// Checklist returns the items in their original order. The slice is a copy.
func (j *Job) Checklist() []*ChecklistItem {
	items := make([]*ChecklistItem, len(j.checklist))
	copy(items, j.checklist)
	return items
}

// IsAssignedTo reports whether cleanerID is the job's cleaner.
func (j *Job) IsAssignedTo(cleanerID kernel.UUID) bool {
	return j.cleanerID != nil && j.cleanerID.IsEqual(cleanerID)
}

// Claim assigns an open job to a cleaner and moves it to Claimed.
//
// This method enforces the following business rules:
//   - The cleaner ID must be valid
//   - Only an Open job can be claimed; claiming twice is rejected
//
// Returns:
//   - nil on success
//   - ValueIsInvalid error naming the current status otherwise
//
// Example:
//
//	prev := j.Status()
//	if err := j.Claim(cleaner.ID()); err != nil {
//	    // Job was already taken
//	}
//	err = repo.Update(ctx, j, prev)
func (j *Job) Claim(cleanerID kernel.UUID) error {
	if err := cleanerID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Claim()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cleanerID = &cleanerID
	return nil
}

// Start marks a claimed job as being worked on. Only Claimed can move to InProgress.
func (j *Job) Start() error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// ChecklistItem looks up an item of this job by id. It returns
// ErrChecklistItemNotFound for ids that belong to another job.
func (j *Job) ChecklistItem(itemID kernel.UUID) (*ChecklistItem, error) {
	for _, item := range j.checklist {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrChecklistItemNotFound
}

// TickItems checks every item whose id is listed. Ids that are not part of the
// job are ignored and already checked items keep their timestamp.
// It returns the items that changed.
//
// Ticking does not depend on the status, so a cleaner may tick items before
// calling Start.
//
// Example:
//
//	changed := j.TickItems([]kernel.UUID{bedsID, bathID}, clock.Now())
//	if len(changed) == 0 {
//	    // Nothing to persist
//	}
func (j *Job) TickItems(itemIDs []kernel.UUID, at time.Time) []*ChecklistItem {
	var ticked []*ChecklistItem
	for _, item := range j.checklist {
		if item.IsChecked() {
			continue
		}
		for _, id := range itemIDs {
			if item.ID().IsEqual(id) {
				item.Check(at)
				ticked = append(ticked, item)
				break
			}
		}
	}
	return ticked
}

// AttachPhoto sets the photo reference of one item. The item's checked state is unchanged.
func (j *Job) AttachPhoto(itemID kernel.UUID, ref string) error {
	item, err := j.ChecklistItem(itemID)
	if err != nil {
		return err
	}
	return item.AttachPhoto(ref)
}

// IsChecklistComplete is true when every item is checked, including the empty checklist.
func (j *Job) IsChecklistComplete() bool {
	for _, item := range j.checklist {
		if !item.IsChecked() {
			return false
		}
	}
	return true
}

// Complete finishes a claimed or in-progress job whose checklist is fully checked.
// The status is checked first, so completing an open or completed job never
// reports ErrChecklistIncomplete.
//
// This method enforces the following business rules:
//   - The job must be Claimed or InProgress
//   - Every checklist item must be checked
//   - Completed is a final state with no further transitions
//
// Parameters:
//   - at: Completion time, stored in UTC
//
// Returns:
//   - nil on success
//   - ValueIsInvalid error if the status does not allow completion
//   - ErrChecklistIncomplete if any item is unchecked
func (j *Job) Complete(at time.Time) error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	if !j.IsChecklistComplete() {
		return ErrChecklistIncomplete
	}

	at = at.UTC()
	j.status = newStatus
	j.completedAt = &at
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setPropertyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.propertyID = id
	return nil
}

func (j *Job) setWindow(window BookingWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	j.window = window
	return nil
}

func (j *Job) setStatus(status Status, cleanerID *kernel.UUID, completedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCleaner(cleanerID != nil); err != nil {
		return err
	}
	if cleanerID != nil {
		if err := cleanerID.Validate(); err != nil {
			return err
		}
		id := *cleanerID
		j.cleanerID = &id
	}
	if (status == Completed) != (completedAt != nil) {
		return ErrCompletedAtMismatch
	}
	if completedAt != nil {
		at := completedAt.UTC()
		j.completedAt = &at
	}
	j.status = status
	return nil
}

func (j *Job) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	j.createdAt = at.UTC()
	return nil
}

func (j *Job) setChecklist(items []*ChecklistItem) error {
	checklist := make([]*ChecklistItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		checklist = append(checklist, item)
	}
	j.checklist = checklist
	return nil
}
