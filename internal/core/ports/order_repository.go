package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Write methods use optimistic concurrency: they compare-and-swap on the
// aggregate's version so at most one in-flight transition per order can
// commit. A lost race surfaces as order.ConflictError; unrelated orders
// never contend.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its complete transition history in chronological order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists non-status field changes (e.g. rack location) with a
	// compare-and-swap on the aggregate's version. Returns order.ConflictError
	// if the stored version no longer matches.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithHistory atomically persists a status change and appends its
	// transition record in a single transaction, with the same
	// compare-and-swap semantics as Update. It must never apply a partial
	// update: either both the status and the record are stored, or neither.
	UpdateWithHistory(ctx context.Context, aggregate *order.Order, record order.TransitionRecord) error

	// GetAllInStatus retrieves every order currently in the given status,
	// across all tenants. Used by background sweeps such as ready-order expiry.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
