package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrDispatchScheduledCommandIsNotConstructed = errors.New(
	"DispatchScheduledCommand must be created via NewDispatchScheduledCommand constructor",
)

// DispatchScheduledCommand triggers promotion of due scheduled deliveries
// into the searching status. Issued periodically by the job scheduler.
type DispatchScheduledCommand struct {
	guard kernel.ConstructorGuard
}

// NewDispatchScheduledCommand creates a scheduled-dispatch trigger command.
func NewDispatchScheduledCommand() DispatchScheduledCommand {
	return DispatchScheduledCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchScheduledCommand) Validate() error {
	return c.guard.Validate(ErrDispatchScheduledCommandIsNotConstructed)
}
