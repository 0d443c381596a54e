package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)
	ErrActorIDIsRequired = errors.New("actor ID is required")
)

// RoutingHint selects the transition authorization path during the
// screen-contract migration window. It is a hint, not an order: the executor
// falls back to the legacy path when the screen has no contract yet.
type RoutingHint string

const (
	// RoutingLegacy requests the legacy path, which checks the edge's screen
	// list directly.
	RoutingLegacy RoutingHint = "legacy"

	// RoutingContract requests the contract path, which checks the
	// materialized per-screen contract. Falls back to legacy when no
	// contract exists for the screen.
	RoutingContract RoutingHint = "contract"
)

// Validate checks that the hint is one of the two known values.
func (r RoutingHint) Validate() error {
	if r != RoutingLegacy && r != RoutingContract {
		return fmt.Errorf("%q is not a valid routing hint", r)
	}
	return nil
}

// RequestTransitionCommand represents a workstation's request to move an
// order to a new status. This is the inbound contract of the transition
// engine: everything the executor needs to authorize, validate, and audit
// the status change.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(
//	    orderID, workflow.ScreenPacking, order.Ready,
//	    "double-wrapped", "operator-7", RoutingContract,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	screen   workflow.Screen
	toStatus order.Status
	notes    string
	actorID  string
	routing  RoutingHint

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a transition request.
// Validates the order ID, screen, target status, actor, and routing hint.
// An empty routing hint defaults to RoutingLegacy.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	screen workflow.Screen,
	toStatus order.Status,
	notes, actorID string,
	routing RoutingHint,
) (RequestTransitionCommand, error) {
	if routing == "" {
		routing = RoutingLegacy
	}

	cmd := RequestTransitionCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setScreen(screen),
		cmd.setToStatus(toStatus),
		cmd.setActorID(actorID),
		cmd.setRouting(routing),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestTransitionCommandIsNotConstructed if validation fails.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Screen returns the workstation requesting the transition.
func (c RequestTransitionCommand) Screen() workflow.Screen {
	return c.screen
}

// ToStatus returns the requested target status.
func (c RequestTransitionCommand) ToStatus() order.Status {
	return c.toStatus
}

// Notes returns the free-form notes to record on the transition, if any.
func (c RequestTransitionCommand) Notes() string {
	return c.notes
}

// ActorID returns the identifier of the requesting actor.
func (c RequestTransitionCommand) ActorID() string {
	return c.actorID
}

// Routing returns the requested authorization path.
func (c RequestTransitionCommand) Routing() RoutingHint {
	return c.routing
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setScreen(screen workflow.Screen) error {
	if err := screen.Validate(); err != nil {
		return err
	}

	c.screen = screen
	return nil
}

func (c *RequestTransitionCommand) setToStatus(toStatus order.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	c.toStatus = toStatus
	return nil
}

func (c *RequestTransitionCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *RequestTransitionCommand) setRouting(routing RoutingHint) error {
	if err := routing.Validate(); err != nil {
		return err
	}

	c.routing = routing
	return nil
}
