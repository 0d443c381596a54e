package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsCountIsInvalid  = errors.New("items count must not be negative")
	ErrPiecesTotalIsInvalid = errors.New("pieces total must not be negative")
)

// CreateOrderCommand represents a request to register a new laundry order at
// the intake counter. Encapsulates the ticket identity and the item and piece
// counts recorded by the intake workstation.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, tenantID, 3, 7, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tenantID    kernel.UUID
	itemsCount  int
	piecesTotal int
	readyBy     *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that both identifiers are valid and the counts are not negative.
// readyBy is the optional promise deadline given to the customer.
func NewCreateOrderCommand(
	orderID, tenantID kernel.UUID,
	itemsCount, piecesTotal int,
	readyBy *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		readyBy: readyBy,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTenantID(tenantID),
		orderCommand.setItemsCount(itemsCount),
		orderCommand.setPiecesTotal(piecesTotal),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the identifier of the owning tenant.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ItemsCount returns the number of items recorded on the ticket.
func (c CreateOrderCommand) ItemsCount() int {
	return c.itemsCount
}

// PiecesTotal returns the number of physical pieces across all items.
func (c CreateOrderCommand) PiecesTotal() int {
	return c.piecesTotal
}

// ReadyBy returns the optional promise deadline, or nil.
func (c CreateOrderCommand) ReadyBy() *time.Time {
	return c.readyBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setItemsCount(count int) error {
	if count < 0 {
		return ErrItemsCountIsInvalid
	}

	c.itemsCount = count
	return nil
}

func (c *CreateOrderCommand) setPiecesTotal(count int) error {
	if count < 0 {
		return ErrPiecesTotalIsInvalid
	}

	c.piecesTotal = count
	return nil
}
