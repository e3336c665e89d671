// Package bookings provides a stand-in for a property management system.
package bookings

import (
	"context"
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
)

// FixedBookingSource returns the same two upcoming stays for every property,
// relative to the current hour.
type FixedBookingSource struct {
	clock kernel.Clock
}

func NewFixedBookingSource(clock kernel.Clock) *FixedBookingSource {
	return &FixedBookingSource{clock: clock}
}

// UpcomingBookings returns stays at +3d11h..+6d15h and +10d11h..+13d15h.
func (s *FixedBookingSource) UpcomingBookings(ctx context.Context, propertyID kernel.UUID) ([]job.BookingWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := propertyID.Validate(); err != nil {
		return nil, err
	}

	base := s.clock.Now().UTC().Truncate(time.Hour)
	offsets := [][2]time.Duration{
		{3*24*time.Hour + 11*time.Hour, 6*24*time.Hour + 15*time.Hour},
		{10*24*time.Hour + 11*time.Hour, 13*24*time.Hour + 15*time.Hour},
	}

	windows := make([]job.BookingWindow, 0, len(offsets))
	for _, o := range offsets {
		w, err := job.NewBookingWindow(base.Add(o[0]), base.Add(o[1]))
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, nil
}
