package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrExpireReadyOrdersCommandIsNotConstructed = errors.New(
	"ExpireReadyOrdersCommand must be created via NewExpireReadyOrdersCommand constructor",
)

// ExpireReadyOrdersCommand triggers the sweep that cancels orders parked in
// "ready" beyond the retention window. The sweep is a sequence of independent
// single-order transitions: a failure on one order leaves the others'
// outcomes untouched.
type ExpireReadyOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireReadyOrdersCommand creates a new command to trigger the expiry sweep.
// This is a parameterless command; the retention window is handler configuration.
func NewExpireReadyOrdersCommand() ExpireReadyOrdersCommand {
	return ExpireReadyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireReadyOrdersCommandIsNotConstructed if validation fails.
func (c *ExpireReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireReadyOrdersCommandIsNotConstructed)
}
