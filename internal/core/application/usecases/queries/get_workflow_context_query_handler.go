package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// GetWorkflowContextQueryHandler assembles a tenant's workflow context.
// Stage flags come from the settings provider, which may serve a short-TTL
// cache since toggles change rarely; the order metrics come from a direct
// SQL aggregate over the tenant's active orders.
type GetWorkflowContextQueryHandler struct {
	db       *gorm.DB
	settings ports.SettingsProvider
}

// NewGetWorkflowContextQueryHandler creates a handler for workflow context queries.
// Requires a GORM database connection for the metrics aggregate and a
// settings provider for the stage flags.
func NewGetWorkflowContextQueryHandler(
	db *gorm.DB,
	settings ports.SettingsProvider,
) GetWorkflowContextQueryHandler {
	return GetWorkflowContextQueryHandler{db: db, settings: settings}
}

// Handle executes the query and returns the tenant's workflow context.
// Active orders are those not yet delivered, cancelled, or closed.
func (h GetWorkflowContextQueryHandler) Handle(
	ctx context.Context,
	query GetWorkflowContextQuery,
) (workflow.WorkflowContext, error) {
	if err := query.Validate(); err != nil {
		return workflow.WorkflowContext{}, err
	}

	settings, err := h.settings.GetSettings(ctx, query.TenantID())
	if err != nil {
		return workflow.WorkflowContext{}, err
	}

	var metrics struct {
		ItemsCount  int
		PiecesTotal int
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(items_count), 0)  AS items_count,
			COALESCE(SUM(pieces_total), 0) AS pieces_total
		FROM orders
		WHERE tenant_id = ?
		  AND status NOT IN (?, ?, ?)
	`, query.TenantID().Bytes(),
		int(order.Delivered), int(order.Cancelled), int(order.Closed),
	).Scan(&metrics).Error
	if err != nil {
		return workflow.WorkflowContext{}, err
	}

	return workflow.WorkflowContext{
		Flags: settings.Toggles.Flags(),
		Metrics: workflow.OrderMetrics{
			ItemsCount:  metrics.ItemsCount,
			PiecesTotal: metrics.PiecesTotal,
		},
	}, nil
}
