package commands

import (
	"errors"

	"cleaning/internal/pkg/guard"
)

var ErrNotifyOverdueJobsCommandIsNotConstructed = errors.New(
	"NotifyOverdueJobsCommand must be created via NewNotifyOverdueJobsCommand constructor",
)

// NotifyOverdueJobsCommand is issued by the periodic sweep, not by users.
type NotifyOverdueJobsCommand struct {
	guard guard.ConstructorGuard
}

func NewNotifyOverdueJobsCommand() NotifyOverdueJobsCommand {
	return NotifyOverdueJobsCommand{guard: guard.NewConstructorGuard()}
}

func (c NotifyOverdueJobsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueJobsCommandIsNotConstructed)
}
