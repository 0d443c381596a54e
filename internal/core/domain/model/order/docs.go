// Package order contains the Order aggregate and its lifecycle model: the
// Status enumeration, the append-only TransitionRecord history, and the
// transition failure taxonomy (invalid transition, terminal state, conflict,
// persistence).
//
// The aggregate owns its status and history exclusively: status changes go
// through ApplyTransition and nothing else, and every change appends exactly
// one history record. Which transitions are legal for a tenant is decided
// outside the aggregate, by the status graph in the services package; the
// aggregate only refuses mutation once it reaches a terminal status.
//
// The version field carries the optimistic-concurrency token. Persistence
// compares and swaps on it so that when two requests race on the same order,
// exactly one commits and the other observes a ConflictError.
package order
