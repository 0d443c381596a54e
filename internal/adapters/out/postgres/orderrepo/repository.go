package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Writes use compare-and-swap on the Version column: the UPDATE carries the
// version the aggregate was loaded with, and a zero row count is resolved to
// either order.ConflictError (row exists at another version) or a not-found
// error. Two concurrent transitions on the same order therefore commit at
// most once; orders never contend with each other.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves non-status field changes with a compare-and-swap on the
// aggregate's version. The in-memory aggregate's version is advanced only
// after the swap succeeds.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.casUpdate(ctx, r.db, aggregate); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithHistory atomically persists a status change and appends its
// transition record. Both writes run in one transaction so the audit trail
// can never disagree with the stored status.
func (r *GormOrderRepository) UpdateWithHistory(
	ctx context.Context,
	aggregate *order.Order,
	record order.TransitionRecord,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.casUpdate(ctx, tx, aggregate); err != nil {
			return err
		}

		recordDTO := recordFromDomain(aggregate.ID(), record)
		return tx.Create(&recordDTO).Error
	})
	if err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// casUpdate writes the aggregate's row, guarded by its loaded version.
// Interprets a zero row count: order.ConflictError when the row exists at a
// different version, not-found otherwise.
func (r *GormOrderRepository) casUpdate(ctx context.Context, tx *gorm.DB, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	result := tx.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"tenant_id":        dto.TenantID,
			"status":           dto.Status,
			"rack_location":    dto.RackLocation,
			"items_count":      dto.ItemsCount,
			"pieces_total":     dto.PiecesTotal,
			"pieces_tagged":    dto.PiecesTagged,
			"pieces_assembled": dto.PiecesAssembled,
			"open_qa_issues":   dto.OpenQAIssues,
			"ready_by":         dto.ReadyBy,
			"version":          dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return order.NewConflictError(aggregate.ID().String())
		}
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID, including its complete transition history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var recordDTOs []TransitionRecordDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&recordDTOs, "order_id = ?", id.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, recordDTOs)
}

// GetAllInStatus retrieves all orders in the given status, across tenants,
// including their transition histories.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	recordsByOrder := make(map[uuid.UUID][]TransitionRecordDTO)
	if len(ids) > 0 {
		var recordDTOs []TransitionRecordDTO
		err := r.db.WithContext(ctx).
			Order("id").
			Find(&recordDTOs, "order_id IN ?", ids).Error
		if err != nil {
			return nil, err
		}
		for _, recordDTO := range recordDTOs {
			recordsByOrder[recordDTO.OrderID] = append(recordsByOrder[recordDTO.OrderID], recordDTO)
		}
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, recordsByOrder[dto.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
