package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a laundry order: the aggregate root that owns the order's
// lifecycle status and its append-only transition history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and tenant identifier
//   - Belongs to exactly one tenant; never shared across tenants
//   - Status changes only through ApplyTransition, which appends a history record
//   - History is append-only; records are never edited or deleted
//   - Once in a terminal status (delivered, cancelled, closed) the order is immutable
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field supports optimistic concurrency: persistence performs a
// compare-and-swap on it so at most one in-flight transition per order can
// commit. All fields are private; the aggregate maintains its invariants
// through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tenantID identifies the owning tenant
	tenantID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// rackLocation is where a packed order is stored, e.g. "A-12" (empty if unracked)
	rackLocation string

	// itemsCount is the number of customer items on the ticket
	itemsCount int

	// piecesTotal is the number of physical pieces across all items
	piecesTotal int

	// piecesTagged is how many pieces have been tagged during preparation
	piecesTagged int

	// piecesAssembled is how many pieces have been regrouped during assembly
	piecesAssembled int

	// openQAIssues is the number of unresolved quality-assurance findings
	openQAIssues int

	// readyBy is the stored promise deadline, if one was given at intake
	readyBy *time.Time

	// version is the optimistic-concurrency token checked at persistence time
	version int

	// history is the append-only list of executed transitions
	history []TransitionRecord

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Intake status with version 1 and an empty
// history. This is the lifecycle starting point: history records transitions,
// so creation itself is not recorded.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - tenantID: the owning tenant (must be a valid UUID)
//   - itemsCount: number of items on the ticket (must not be negative)
//   - piecesTotal: number of physical pieces (must not be negative)
//
// Returns the created order, or a validation error if any parameter is invalid.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), tenantID, 3, 7)
func NewOrder(id, tenantID kernel.UUID, itemsCount, piecesTotal int) (*Order, error) {
	o := &Order{
		status:        Intake,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setItemsCount(itemsCount),
		o.setPiecesTotal(piecesTotal),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-validated; the history slice is adopted as-is and must already be in
// chronological order.
func RestoreOrder(
	id, tenantID kernel.UUID,
	status Status,
	rackLocation string,
	itemsCount, piecesTotal, piecesTagged, piecesAssembled, openQAIssues int,
	readyBy *time.Time,
	version int,
	history []TransitionRecord,
) (*Order, error) {
	o := &Order{
		rackLocation:    rackLocation,
		piecesTagged:    piecesTagged,
		piecesAssembled: piecesAssembled,
		openQAIssues:    openQAIssues,
		readyBy:         readyBy,
		history:         history,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setItemsCount(itemsCount),
		o.setPiecesTotal(piecesTotal),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the identifier of the owning tenant.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// RackLocation returns where the packed order is stored, or "" if unracked.
func (o *Order) RackLocation() string {
	return o.rackLocation
}

// ItemsCount returns the number of customer items on the ticket.
func (o *Order) ItemsCount() int {
	return o.itemsCount
}

// PiecesTotal returns the number of physical pieces across all items.
func (o *Order) PiecesTotal() int {
	return o.piecesTotal
}

// PiecesTagged returns how many pieces have been tagged during preparation.
func (o *Order) PiecesTagged() int {
	return o.piecesTagged
}

// PiecesAssembled returns how many pieces have been regrouped during assembly.
func (o *Order) PiecesAssembled() int {
	return o.piecesAssembled
}

// OpenQAIssues returns the number of unresolved quality-assurance findings.
func (o *Order) OpenQAIssues() int {
	return o.openQAIssues
}

// ReadyBy returns the stored promise deadline, or nil if none was given.
func (o *Order) ReadyBy() *time.Time {
	return o.readyBy
}

// Version returns the optimistic-concurrency token. It reflects the version
// the aggregate was loaded with; persistence advances it on a successful
// compare-and-swap write.
func (o *Order) Version() int {
	return o.version
}

// History returns a copy of the append-only transition history, oldest first.
func (o *Order) History() []TransitionRecord {
	history := make([]TransitionRecord, len(o.history))
	copy(history, o.history)
	return history
}

// ApplyTransition moves the order to the given status and appends the
// corresponding TransitionRecord. It is the only way to change status.
//
// ApplyTransition does NOT consult the status graph: edge legality and
// preconditions are the transition executor's responsibility. The aggregate
// enforces only its own invariants:
//   - a terminal order refuses every transition (TerminalStateError)
//   - the target status must be valid
//
// Returns the appended record on success.
func (o *Order) ApplyTransition(
	to Status,
	screen workflow.Screen,
	notes, actorID string,
	at time.Time,
) (TransitionRecord, error) {
	if o.status.IsTerminal() {
		return TransitionRecord{}, NewTerminalStateError(o.status)
	}
	if err := to.Validate(); err != nil {
		return TransitionRecord{}, err
	}
	if err := screen.Validate(); err != nil {
		return TransitionRecord{}, err
	}

	record := NewTransitionRecord(at, o.status, to, screen, notes, actorID)
	o.history = append(o.history, record)
	o.status = to
	return record, nil
}

// SetRackLocation records where the packed order is stored.
// An empty location clears the rack assignment. Terminal orders are immutable.
func (o *Order) SetRackLocation(location string) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}
	o.rackLocation = location
	return nil
}

// MarkPiecesTagged records how many pieces have been tagged during preparation.
func (o *Order) MarkPiecesTagged(count int) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}
	if count < 0 || count > o.piecesTotal {
		return errs.NewValueIsOutOfRangeError("piecesTagged", count, 0, o.piecesTotal)
	}
	o.piecesTagged = count
	return nil
}

// MarkPiecesAssembled records how many pieces have been regrouped during assembly.
func (o *Order) MarkPiecesAssembled(count int) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}
	if count < 0 || count > o.piecesTotal {
		return errs.NewValueIsOutOfRangeError("piecesAssembled", count, 0, o.piecesTotal)
	}
	o.piecesAssembled = count
	return nil
}

// SetOpenQAIssues records the number of unresolved quality-assurance findings.
func (o *Order) SetOpenQAIssues(count int) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("openQAIssues",
			fmt.Errorf("%d is not greater than or equal to 0", count))
	}
	o.openQAIssues = count
	return nil
}

// SetReadyBy stores the promise deadline given to the customer.
// Blockers that reason about deadlines read this stored value, never the
// wall clock, so evaluations stay reproducible in audits.
func (o *Order) SetReadyBy(deadline time.Time) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}
	o.readyBy = &deadline
	return nil
}

// AdvanceVersion bumps the optimistic-concurrency token.
// Called by persistence after a successful compare-and-swap write so the
// in-memory aggregate matches the stored row.
func (o *Order) AdvanceVersion() {
	o.version++
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTenantID validates and sets the owning tenant's identifier.
// This is a private method used only during construction.
func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantID", err)
	}
	o.tenantID = tenantID
	return nil
}

// setItemsCount validates and sets the items count.
// This is a private method used only during construction.
func (o *Order) setItemsCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemsCount",
			fmt.Errorf("%d is not greater than or equal to 0", count))
	}
	o.itemsCount = count
	return nil
}

// setPiecesTotal validates and sets the total pieces count.
// This is a private method used only during construction.
func (o *Order) setPiecesTotal(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("piecesTotal",
			fmt.Errorf("%d is not greater than or equal to 0", count))
	}
	o.piecesTotal = count
	return nil
}

// setStatus validates and sets the status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVersion validates and sets the concurrency token during restoration.
// This is a private method used only during construction.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version",
			fmt.Errorf("%d is not greater than or equal to 1", version))
	}
	o.version = version
	return nil
}
