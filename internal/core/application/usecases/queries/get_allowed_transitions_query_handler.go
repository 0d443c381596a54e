package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllowedTransitionsQueryHandler computes the reachable statuses for an
// order. Uses direct SQL for the reads in the CQRS pattern, then the status
// graph domain service for the edge computation: the same service the
// transition executor uses, so the UI can never advertise an action the
// engine would reject as absent from the graph.
type GetAllowedTransitionsQueryHandler struct {
	db    *gorm.DB
	graph services.StatusGraph
}

// NewGetAllowedTransitionsQueryHandler creates a handler for allowed-transition queries.
// Requires a GORM database connection for query execution.
func NewGetAllowedTransitionsQueryHandler(db *gorm.DB) GetAllowedTransitionsQueryHandler {
	return GetAllowedTransitionsQueryHandler{db: db, graph: services.NewStatusGraph()}
}

// Handle executes the query.
// Returns the snake_case status names reachable from the order's current
// status via any screen; an empty slice for orders in a terminal status.
func (h GetAllowedTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllowedTransitionsQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row struct {
		Status   int
		TenantID uuid.UUID
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			tenant_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.TenantID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	status := order.Status(row.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		return []string{}, nil
	}

	toggles, err := h.loadToggles(ctx, row.TenantID)
	if err != nil {
		return nil, err
	}

	targets := h.graph.AllowedTargets(toggles, status)
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.String())
	}
	return names, nil
}

// loadToggles reads the tenant's stage toggles. Tenants without stored
// settings run with every optional stage enabled.
func (h GetAllowedTransitionsQueryHandler) loadToggles(
	ctx context.Context,
	tenantID uuid.UUID,
) (workflow.StageToggles, error) {
	var row struct {
		AssemblyEnabled bool
		QaEnabled       bool
		PackingEnabled  bool
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			assembly_enabled,
			qa_enabled,
			packing_enabled
		FROM tenant_settings
		WHERE tenant_id = ?
	`, tenantID).Scan(&row)
	if result.Error != nil {
		return workflow.StageToggles{}, result.Error
	}
	if result.RowsAffected == 0 {
		return workflow.AllStagesEnabled(), nil
	}

	return workflow.StageToggles{
		AssemblyEnabled: row.AssemblyEnabled,
		QAEnabled:       row.QaEnabled,
		PackingEnabled:  row.PackingEnabled,
	}, nil
}
