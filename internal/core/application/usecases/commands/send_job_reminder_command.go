package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrSendJobReminderCommandIsNotConstructed = errors.New(
	"SendJobReminderCommand must be created via NewSendJobReminderCommand constructor",
)

// SendJobReminderCommand is issued by the reminder scheduler, not by users.
type SendJobReminderCommand struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendJobReminderCommand(jobID kernel.UUID) (SendJobReminderCommand, error) {
	if err := jobID.Validate(); err != nil {
		return SendJobReminderCommand{}, err
	}

	return SendJobReminderCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SendJobReminderCommand) Validate() error {
	return c.guard.Validate(ErrSendJobReminderCommandIsNotConstructed)
}

func (c SendJobReminderCommand) JobID() kernel.UUID {
	return c.jobID
}
