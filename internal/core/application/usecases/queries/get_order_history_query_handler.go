package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's transition records from
// the database. Uses direct SQL for the reads in the CQRS pattern.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's complete audit trail.
// Records are returned in insertion order, which matches occurrence order
// because transitions on one order are serialized by version checks.
// An order without transitions yields an empty slice.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			occurred_at,
			from_status,
			to_status,
			screen,
			notes,
			actor_id
		FROM transition_records
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var fromStatus, toStatus int

		err = rows.Scan(
			&entry.OccurredAt,
			&fromStatus,
			&toStatus,
			&entry.Screen,
			&entry.Notes,
			&entry.ActorID,
		)
		if err != nil {
			return nil, err
		}

		entry.FromStatus = order.Status(fromStatus).String()
		entry.ToStatus = order.Status(toStatus).String()
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
