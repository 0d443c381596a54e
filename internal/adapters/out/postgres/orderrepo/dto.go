// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The Version column carries the optimistic concurrency token; every write
// compares against it and increments it in the same statement.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	RackLocation    string
	ItemsCount      int
	PiecesTotal     int
	PiecesTagged    int
	PiecesAssembled int
	OpenQAIssues    int
	ReadyBy         *time.Time
	Version         int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TransitionRecordDTO represents one row of an order's audit trail.
// The auto-incremented ID preserves insertion order, which matches
// occurrence order because writes on one order are serialized by the
// version check on the orders table.
type TransitionRecordDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt time.Time
	FromStatus int
	ToStatus   int
	Screen     string
	Notes      string
	ActorID    string
}

// TableName specifies the database table name for transition records.
func (TransitionRecordDTO) TableName() string {
	return "transition_records"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		TenantID:        aggregate.TenantID().Bytes(),
		Status:          int(aggregate.Status()),
		RackLocation:    aggregate.RackLocation(),
		ItemsCount:      aggregate.ItemsCount(),
		PiecesTotal:     aggregate.PiecesTotal(),
		PiecesTagged:    aggregate.PiecesTagged(),
		PiecesAssembled: aggregate.PiecesAssembled(),
		OpenQAIssues:    aggregate.OpenQAIssues(),
		ReadyBy:         aggregate.ReadyBy(),
		Version:         aggregate.Version(),
	}
}

// recordFromDomain converts an audit entry to its database representation.
// The row ID is assigned by the database on insert.
func recordFromDomain(orderID kernel.UUID, record order.TransitionRecord) TransitionRecordDTO {
	return TransitionRecordDTO{
		OrderID:    orderID.Bytes(),
		OccurredAt: record.OccurredAt(),
		FromStatus: int(record.From()),
		ToStatus:   int(record.To()),
		Screen:     record.Screen().String(),
		Notes:      record.Notes(),
		ActorID:    record.ActorID(),
	}
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including its audit trail using RestoreOrder.
func toDomain(dto OrderDTO, recordDTOs []TransitionRecordDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	history := make([]order.TransitionRecord, 0, len(recordDTOs))
	for _, recordDTO := range recordDTOs {
		history = append(history, order.NewTransitionRecord(
			recordDTO.OccurredAt,
			order.Status(recordDTO.FromStatus),
			order.Status(recordDTO.ToStatus),
			workflow.Screen(recordDTO.Screen),
			recordDTO.Notes,
			recordDTO.ActorID,
		))
	}

	return order.RestoreOrder(
		id, tenantID,
		order.Status(dto.Status),
		dto.RackLocation,
		dto.ItemsCount, dto.PiecesTotal, dto.PiecesTagged, dto.PiecesAssembled, dto.OpenQAIssues,
		dto.ReadyBy,
		dto.Version,
		history,
	)
}
