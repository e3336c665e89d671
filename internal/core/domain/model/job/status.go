package job

import (
	"fmt"

	"cleaning/internal/pkg/errs"
)

// Status is the lifecycle state of a job.
type Status int

const (
	Unknown Status = iota
	Open
	Claimed
	InProgress
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Open:       "open",
		Claimed:    "claimed",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

func (s Status) Validate() error {
	if s < Open || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// RequiresCleaner reports whether a job in this status must have a cleaner.
func (s Status) RequiresCleaner() bool {
	return s == Claimed || s == InProgress || s == Completed
}

// ValidateCanHaveCleaner checks the status/cleaner pairing invariant.
func (s Status) ValidateCanHaveCleaner(hasCleaner bool) error {
	if hasCleaner && !s.RequiresCleaner() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a cleaner", s),
		)
	}

	if !hasCleaner && s.RequiresCleaner() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no cleaner", s),
		)
	}

	return nil
}

// Claim transitions Open -> Claimed.
func (s Status) Claim() (Status, error) {
	if s != Open {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s),
		)
	}
	return Claimed, nil
}

// Start transitions Claimed -> InProgress.
func (s Status) Start() (Status, error) {
	if s != Claimed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s),
		)
	}
	return InProgress, nil
}

// Complete transitions Claimed or InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Claimed && s != InProgress {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}
