// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetAllowedTransitionsQueryIsNotConstructed = errors.New(
		"GetAllowedTransitionsQuery must be created via NewGetAllowedTransitionsQuery constructor",
	)
)

// GetAllowedTransitionsQuery retrieves the statuses an order can move to from
// its current status via any screen, under the owning tenant's effective
// graph. Workstations use it to render the available actions.
//
// Example:
//
//	query, err := NewGetAllowedTransitionsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	targets, err := handler.Handle(ctx, query)
//	// targets: e.g. ["ready", "cancelled"]
type GetAllowedTransitionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllowedTransitionsQuery creates a query for the given order.
// Validates that the order ID is a valid UUID.
func NewGetAllowedTransitionsQuery(orderID kernel.UUID) (GetAllowedTransitionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAllowedTransitionsQuery{}, err
	}

	return GetAllowedTransitionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllowedTransitionsQueryIsNotConstructed if validation fails.
func (q GetAllowedTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedTransitionsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to inspect.
func (q GetAllowedTransitionsQuery) OrderID() kernel.UUID {
	return q.orderID
}
