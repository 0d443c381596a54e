package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrSetRackLocationCommandIsNotConstructed = errors.New(
		"SetRackLocationCommand must be created via NewSetRackLocationCommand constructor",
	)
	ErrRackLocationIsRequired = errors.New("rack location is required")
)

// SetRackLocationCommand records where a packed order is stored, e.g. "A-12".
// The packing workstation issues it before requesting the packing -> ready
// transition, whose rack_location_required blocker reads the stored value.
type SetRackLocationCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	rackLocation string

	guard guard.ConstructorGuard
}

// NewSetRackLocationCommand creates a command to record an order's rack location.
// Validates that the order ID is valid and the location is not empty.
func NewSetRackLocationCommand(orderID kernel.UUID, rackLocation string) (SetRackLocationCommand, error) {
	cmd := SetRackLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRackLocation(rackLocation),
	); err != nil {
		return SetRackLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRackLocationCommandIsNotConstructed if validation fails.
func (c SetRackLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetRackLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetRackLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RackLocation returns the rack location to record.
func (c SetRackLocationCommand) RackLocation() string {
	return c.rackLocation
}

func (c *SetRackLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetRackLocationCommand) setRackLocation(rackLocation string) error {
	if rackLocation == "" {
		return ErrRackLocationIsRequired
	}

	c.rackLocation = rackLocation
	return nil
}
