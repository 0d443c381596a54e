package tenantrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/workflow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTenantSettingsRepository implements TenantSettingsRepository using GORM.
// A tenant without a stored row runs on workflow.DefaultSettings; absence is
// configuration, not an error.
type GormTenantSettingsRepository struct {
	db *gorm.DB
}

// NewGormTenantSettingsRepository creates a new GORM tenant settings repository.
func NewGormTenantSettingsRepository(db *gorm.DB) *GormTenantSettingsRepository {
	return &GormTenantSettingsRepository{db: db}
}

// Get retrieves the settings for a tenant.
func (r *GormTenantSettingsRepository) Get(ctx context.Context, tenantID kernel.UUID) (workflow.Settings, error) {
	if err := tenantID.Validate(); err != nil {
		return workflow.Settings{}, err
	}

	var dto TenantSettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "tenant_id = ?", tenantID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workflow.DefaultSettings(), nil
	}
	if err != nil {
		return workflow.Settings{}, err
	}

	return toDomain(dto), nil
}

// Upsert stores the settings for a tenant, replacing any existing row.
func (r *GormTenantSettingsRepository) Upsert(
	ctx context.Context,
	tenantID kernel.UUID,
	settings workflow.Settings,
) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tenantID.Bytes(), settings)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetAllTenantIDs lists every tenant with stored settings.
func (r *GormTenantSettingsRepository) GetAllTenantIDs(ctx context.Context) ([]kernel.UUID, error) {
	var dtos []TenantSettingsDTO
	if err := r.db.WithContext(ctx).Select("tenant_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.TenantID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
