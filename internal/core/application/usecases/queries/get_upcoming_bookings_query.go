package queries

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/ports"
	"cleaning/internal/pkg/guard"
)

var ErrGetUpcomingBookingsQueryIsNotConstructed = errors.New(
	"GetUpcomingBookingsQuery must be created via NewGetUpcomingBookingsQuery constructor",
)

// GetUpcomingBookingsQuery asks the booking source for a property's next stays.
// Any authenticated caller may run it and the property is not looked up.
type GetUpcomingBookingsQuery struct {
	principal  identity.Principal
	propertyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUpcomingBookingsQuery(principal identity.Principal, propertyID kernel.UUID) (GetUpcomingBookingsQuery, error) {
	if err := errors.Join(principal.Validate(), propertyID.Validate()); err != nil {
		return GetUpcomingBookingsQuery{}, err
	}
	return GetUpcomingBookingsQuery{
		principal:  principal,
		propertyID: propertyID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetUpcomingBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingBookingsQueryIsNotConstructed)
}

func (q GetUpcomingBookingsQuery) PropertyID() kernel.UUID {
	return q.propertyID
}

type GetUpcomingBookingsQueryHandler struct {
	bookings ports.BookingSource
}

func NewGetUpcomingBookingsQueryHandler(bookings ports.BookingSource) GetUpcomingBookingsQueryHandler {
	return GetUpcomingBookingsQueryHandler{bookings: bookings}
}

func (h GetUpcomingBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingBookingsQuery,
) ([]job.BookingWindow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.bookings.UpcomingBookings(ctx, query.PropertyID())
}
