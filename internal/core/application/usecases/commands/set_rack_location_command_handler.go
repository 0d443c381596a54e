package commands

import (
	"context"
)

// SetRackLocationCommandHandler handles rack location updates.
// Rack location is a non-status field: the update carries no history record,
// but it still goes through the compare-and-swap write so it cannot clobber a
// concurrent transition.
type SetRackLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetRackLocationCommandHandler creates a handler for rack location updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetRackLocationCommandHandler(uowFactory OrderUoWFactory) SetRackLocationCommandHandler {
	return SetRackLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rack location update.
// Returns order.ConflictError when the order was modified concurrently; the
// caller should reload and retry.
func (h SetRackLocationCommandHandler) Handle(ctx context.Context, cmd SetRackLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetRackLocation(cmd.RackLocation()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
