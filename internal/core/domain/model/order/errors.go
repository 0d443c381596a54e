package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/workflow"
)

// Sentinel errors for the transition failure taxonomy. Blocker failures are
// not part of this taxonomy: they are data (a list of reasons), never errors.
var (
	// ErrInvalidTransition indicates the requested edge does not exist in the
	// tenant's effective status graph, or the requesting screen is not
	// permitted on it. This is a protocol violation (stale client state or a
	// configuration bug) and is never retried automatically.
	ErrInvalidTransition = errors.New("transition is invalid")

	// ErrTerminalState indicates a transition was attempted from a terminal
	// status. Treated like ErrInvalidTransition.
	ErrTerminalState = errors.New("order is in a terminal state")

	// ErrConflict indicates the order lost a concurrency race: another
	// transition committed first. The caller should reload the order and may
	// retry against the new status.
	ErrConflict = errors.New("concurrent transition conflict")

	// ErrPersistence indicates an infrastructure failure while writing the
	// transition. The executor retries the atomic write a bounded number of
	// times before surfacing this error.
	ErrPersistence = errors.New("persistence failure")
)

// InvalidTransitionError reports a requested edge absent from the effective
// status graph, or a screen not permitted to request it.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Screen workflow.Screen
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// requested edge and screen.
func NewInvalidTransitionError(from, to Status, screen workflow.Screen) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Screen: screen}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not available to screen %q",
		ErrInvalidTransition, e.From, e.To, e.Screen)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError reports a transition attempted from a terminal status.
type TerminalStateError struct {
	Status Status
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(status Status) *TerminalStateError {
	return &TerminalStateError{Status: status}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s has no outgoing transitions", ErrTerminalState, e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// ConflictError reports a lost optimistic-concurrency race on an order.
type ConflictError struct {
	OrderID string
}

// NewConflictError creates a ConflictError for the given order.
func NewConflictError(orderID string) *ConflictError {
	return &ConflictError{OrderID: orderID}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: order %s was modified concurrently", ErrConflict, e.OrderID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// PersistenceError reports an infrastructure failure after the bounded retry
// budget was exhausted.
type PersistenceError struct {
	Cause error
}

// NewPersistenceError creates a PersistenceError wrapping the underlying cause.
func NewPersistenceError(cause error) *PersistenceError {
	return &PersistenceError{Cause: cause}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPersistence, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
