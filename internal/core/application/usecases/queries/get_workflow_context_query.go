package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetWorkflowContextQueryIsNotConstructed = errors.New(
		"GetWorkflowContextQuery must be created via NewGetWorkflowContextQuery constructor",
	)
)

// GetWorkflowContextQuery retrieves a tenant's workflow context: the stage
// flags plus informational metrics over the tenant's active orders.
//
// The context feeds the workstation UI only. It is never the source of truth
// for a transition's legality; the transition executor recomputes the
// effective graph from fresh settings on every request.
//
// Example:
//
//	query, err := NewGetWorkflowContextQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//	context, err := handler.Handle(ctx, query)
//	fmt.Printf("assembly enabled: %v", context.Flags["assembly_enabled"])
type GetWorkflowContextQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkflowContextQuery creates a query for the given tenant.
// Validates that the tenant ID is a valid UUID.
func NewGetWorkflowContextQuery(tenantID kernel.UUID) (GetWorkflowContextQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetWorkflowContextQuery{}, err
	}

	return GetWorkflowContextQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkflowContextQueryIsNotConstructed if validation fails.
func (q GetWorkflowContextQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowContextQueryIsNotConstructed)
}

// TenantID returns the identifier of the tenant to inspect.
func (q GetWorkflowContextQuery) TenantID() kernel.UUID {
	return q.tenantID
}
