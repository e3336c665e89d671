package commands

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand posts a cleaning job for one booking of a host's property.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(principal, kernel.NewUUID(), propertyID,
//	    checkIn, checkOut, []string{"Strip beds", "Clean kitchen"})
//	if err != nil {
//	    return err
//	}
//	j, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct {
	principal  identity.Principal
	jobID      kernel.UUID
	propertyID kernel.UUID
	window     job.BookingWindow
	checklist  []string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand does not check that bookingStart precedes bookingEnd.
func NewCreateJobCommand(
	principal identity.Principal,
	jobID kernel.UUID,
	propertyID kernel.UUID,
	bookingStart time.Time,
	bookingEnd time.Time,
	checklist []string,
) (CreateJobCommand, error) {
	window, windowErr := job.NewBookingWindow(bookingStart, bookingEnd)

	if err := errors.Join(
		principal.Validate(),
		jobID.Validate(),
		propertyID.Validate(),
		windowErr,
	); err != nil {
		return CreateJobCommand{}, err
	}

	texts := make([]string, len(checklist))
	copy(texts, checklist)

	return CreateJobCommand{
		principal:  principal,
		jobID:      jobID,
		propertyID: propertyID,
		window:     window,
		checklist:  texts,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) Principal() identity.Principal {
	return c.principal
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

func (c CreateJobCommand) Window() job.BookingWindow {
	return c.window
}

func (c CreateJobCommand) Checklist() []string {
	texts := make([]string, len(c.checklist))
	copy(texts, c.checklist)
	return texts
}
