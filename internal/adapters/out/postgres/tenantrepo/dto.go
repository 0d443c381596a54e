// Package tenantrepo provides data transfer objects and mapping functions for
// per-tenant workflow settings persistence.
package tenantrepo

import (
	"strings"
	"time"

	"laundry/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// TenantSettingsDTO represents the database structure for per-tenant workflow
// configuration. Contract screens are stored as a comma-separated list; the
// set is small and read whole, never queried by member.
type TenantSettingsDTO struct {
	TenantID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssemblyEnabled bool
	QaEnabled       bool
	PackingEnabled  bool
	ContractScreens string
	UpdatedAt       time.Time
}

// TableName specifies the database table name for tenant settings.
func (TenantSettingsDTO) TableName() string {
	return "tenant_settings"
}

// fromDomain converts tenant settings to their database representation.
func fromDomain(tenantID uuid.UUID, settings workflow.Settings) TenantSettingsDTO {
	screens := make([]string, 0, len(settings.ContractScreens))
	for _, screen := range settings.ContractScreens {
		screens = append(screens, screen.String())
	}

	return TenantSettingsDTO{
		TenantID:        tenantID,
		AssemblyEnabled: settings.Toggles.AssemblyEnabled,
		QaEnabled:       settings.Toggles.QAEnabled,
		PackingEnabled:  settings.Toggles.PackingEnabled,
		ContractScreens: strings.Join(screens, ","),
	}
}

// toDomain converts a database DTO to tenant settings.
func toDomain(dto TenantSettingsDTO) workflow.Settings {
	settings := workflow.Settings{
		Toggles: workflow.StageToggles{
			AssemblyEnabled: dto.AssemblyEnabled,
			QAEnabled:       dto.QaEnabled,
			PackingEnabled:  dto.PackingEnabled,
		},
	}

	if dto.ContractScreens != "" {
		for _, name := range strings.Split(dto.ContractScreens, ",") {
			settings.ContractScreens = append(settings.ContractScreens, workflow.Screen(name))
		}
	}

	return settings
}
