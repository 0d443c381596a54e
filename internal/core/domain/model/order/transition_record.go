package order

import (
	"time"

	"laundry/internal/core/domain/model/workflow"
)

// TransitionRecord is an immutable audit entry describing one successful
// status transition. Records are appended by the transition executor only,
// never edited or deleted; the sequence of (from, to) pairs in an order's
// history is always a walk over the status graph as it stood at the time
// each record was written.
type TransitionRecord struct {
	occurredAt time.Time
	from       Status
	to         Status
	screen     workflow.Screen
	notes      string
	actorID    string
}

// NewTransitionRecord creates an audit record for a transition that occurred
// at the given time.
func NewTransitionRecord(
	occurredAt time.Time,
	from, to Status,
	screen workflow.Screen,
	notes, actorID string,
) TransitionRecord {
	return TransitionRecord{
		occurredAt: occurredAt,
		from:       from,
		to:         to,
		screen:     screen,
		notes:      notes,
		actorID:    actorID,
	}
}

// OccurredAt returns the time the transition was executed.
func (r TransitionRecord) OccurredAt() time.Time {
	return r.occurredAt
}

// From returns the status the order moved out of.
func (r TransitionRecord) From() Status {
	return r.from
}

// To returns the status the order moved into.
func (r TransitionRecord) To() Status {
	return r.to
}

// Screen returns the workstation that requested the transition.
func (r TransitionRecord) Screen() workflow.Screen {
	return r.screen
}

// Notes returns the free-form notes attached by the actor, if any.
func (r TransitionRecord) Notes() string {
	return r.notes
}

// ActorID returns the identifier of the actor who requested the transition.
func (r TransitionRecord) ActorID() string {
	return r.actorID
}
