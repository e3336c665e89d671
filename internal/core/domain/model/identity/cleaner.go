package identity

import (
	"errors"
	"fmt"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

// Stars bound every rating a cleaner can receive.
const (
	MinStars = 1
	MaxStars = 5
)

// ErrCleanerIsNotConstructed is returned when a Cleaner was not created through
// NewCleaner or RestoreCleaner.
var ErrCleanerIsNotConstructed = errors.New("Cleaner must be created via NewCleaner or RestoreCleaner constructor")

// Cleaner is the profile of a worker. avgRating and ratingsCount form a running
// mean over every rating ever received; ratings are append-only.
//
// Cleaner follows these invariants:
//   - Must have valid profile and user identifiers
//   - ratingsCount is never negative
//   - avgRating is 0 without ratings and within [MinStars, MaxStars] otherwise
//   - Can only be created through NewCleaner or RestoreCleaner
type Cleaner struct {
	id           kernel.UUID
	userID       kernel.UUID
	name         string
	phone        string
	avgRating    float64
	ratingsCount int
	guard        guard.ConstructorGuard
}

// NewCleaner creates a cleaner with an empty rating aggregate.
//
// Parameters:
//   - id: Unique identifier for the profile
//   - userID: The user account that owns the profile
//   - name, phone: Contact details, stored as given
//
// Example:
//
//	cleaner, err := identity.NewCleaner(kernel.NewUUID(), user.ID(), "Chris", "+1 555 0100")
//	if err != nil {
//	    // Handle validation error
//	}
func NewCleaner(id kernel.UUID, userID kernel.UUID, name string, phone string) (*Cleaner, error) {
	return RestoreCleaner(id, userID, name, phone, 0, 0)
}

// RestoreCleaner rebuilds a cleaner from persisted state, rating aggregate
// included, and rejects an aggregate that breaks the invariants above.
func RestoreCleaner(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	phone string,
	avgRating float64,
	ratingsCount int,
) (*Cleaner, error) {
	cleaner := &Cleaner{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		cleaner.setAggregate(avgRating, ratingsCount),
	); err != nil {
		return nil, err
	}

	cleaner.id = id
	cleaner.userID = userID
	return cleaner, nil
}

// Validate ensures the Cleaner was built through one of its constructors.
//
// Returns:
//   - nil if the cleaner is valid
//   - ErrCleanerIsNotConstructed for a nil or zero-value Cleaner
func (c *Cleaner) Validate() error {
	if c == nil {
		return ErrCleanerIsNotConstructed
	}
	return c.guard.Validate(ErrCleanerIsNotConstructed)
}

// ID returns the profile identifier.
func (c *Cleaner) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user account.
func (c *Cleaner) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c *Cleaner) Name() string {
	return c.name
}

// Phone returns the contact number.
func (c *Cleaner) Phone() string {
	return c.phone
}

// AvgRating returns the mean of all received stars, or 0 without ratings.
func (c *Cleaner) AvgRating() float64 {
	return c.avgRating
}

// RatingsCount returns how many ratings were folded into AvgRating.
func (c *Cleaner) RatingsCount() int {
	return c.ratingsCount
}

// AddRating folds one rating into the aggregate:
// avg' = (avg*count + stars) / (count+1), count' = count+1.
//
// Parameters:
//   - stars: The rating to add, within [MinStars, MaxStars]
//
// Returns:
//   - nil on success
//   - ValueIsOutOfRange error if stars is outside the range; the aggregate is unchanged
//
// Example:
//
//	_ = cleaner.AddRating(5)
//	_ = cleaner.AddRating(4)
//	cleaner.AvgRating()    // 4.5
//	cleaner.RatingsCount() // 2
func (c *Cleaner) AddRating(stars int) error {
	if stars < MinStars || stars > MaxStars {
		return errs.NewValueIsOutOfRangeError("stars", stars, MinStars, MaxStars)
	}

	total := c.avgRating*float64(c.ratingsCount) + float64(stars)
	c.ratingsCount++
	c.avgRating = total / float64(c.ratingsCount)
	return nil
}

func (c *Cleaner) setAggregate(avgRating float64, ratingsCount int) error {
	if ratingsCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ratings count", fmt.Errorf("%d is negative", ratingsCount))
	}

	if ratingsCount == 0 && avgRating != 0 {
		return errs.NewValueIsInvalidErrorWithCause("avg rating", fmt.Errorf("%v without ratings", avgRating))
	}

	if ratingsCount > 0 && (avgRating < MinStars || avgRating > MaxStars) {
		return errs.NewValueIsOutOfRangeError("avg rating", avgRating, MinStars, MaxStars)
	}

	c.avgRating = avgRating
	c.ratingsCount = ratingsCount
	return nil
}
