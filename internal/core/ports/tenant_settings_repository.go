package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/workflow"
)

// TenantSettingsRepository defines the persistence contract for per-tenant
// workflow configuration: stage toggles and screen-contract enrollment.
type TenantSettingsRepository interface {
	// Get retrieves the settings for a tenant. Tenants without stored
	// settings receive workflow.DefaultSettings (all optional stages enabled,
	// no screens enrolled in the contract rollout); absence is configuration,
	// not an error.
	Get(ctx context.Context, tenantID kernel.UUID) (workflow.Settings, error)

	// Upsert stores the settings for a tenant, replacing any existing row.
	Upsert(ctx context.Context, tenantID kernel.UUID, settings workflow.Settings) error

	// GetAllTenantIDs lists every tenant with stored settings.
	// Used by the toggle cache refresh job.
	GetAllTenantIDs(ctx context.Context) ([]kernel.UUID, error)
}

// SettingsProvider is the read path consumed by informational surfaces such
// as the workflow context query. Implementations may cache with a short TTL;
// the transition executor never uses this provider: it reads settings
// through the repository at request time so transition legality is always
// decided on fresh configuration.
type SettingsProvider interface {
	GetSettings(ctx context.Context, tenantID kernel.UUID) (workflow.Settings, error)
}
