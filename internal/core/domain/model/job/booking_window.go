package job

import (
	"errors"
	"time"

	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrBookingWindowIsNotConstructed = errors.New("BookingWindow must be created via NewBookingWindow constructor")

// BookingWindow is the guest stay [start, end) a job is attached to.
// Ordering between start and end is the caller's responsibility.
type BookingWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

func NewBookingWindow(start time.Time, end time.Time) (BookingWindow, error) {
	var startErr, endErr error
	if start.IsZero() {
		startErr = errs.NewValueIsRequiredError("booking start")
	}
	if end.IsZero() {
		endErr = errs.NewValueIsRequiredError("booking end")
	}
	if err := errors.Join(startErr, endErr); err != nil {
		return BookingWindow{}, err
	}

	return BookingWindow{
		start: start.UTC(),
		end:   end.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (w BookingWindow) Validate() error {
	return w.guard.Validate(ErrBookingWindowIsNotConstructed)
}

func (w BookingWindow) Start() time.Time {
	return w.start
}

func (w BookingWindow) End() time.Time {
	return w.end
}

// ReminderDelay is how long to wait from now until lead before the booking ends,
// clamped at zero.
func (w BookingWindow) ReminderDelay(now time.Time, lead time.Duration) time.Duration {
	delay := w.end.Sub(now) - lead
	if delay < 0 {
		return 0
	}
	return delay
}

// HasEnded reports whether the booking end is not after now.
func (w BookingWindow) HasEnded(now time.Time) bool {
	return !w.end.After(now)
}
