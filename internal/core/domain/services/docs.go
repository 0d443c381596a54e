// Package services provides the domain services of the order lifecycle
// transition engine: logic that spans the Order aggregate and the per-tenant
// workflow configuration and doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusGraph: computes a tenant's effective transition edges from the
//     canonical stage chain and the tenant's stage toggles
//   - ScreenContractResolver: materializes per-screen views of the graph for
//     tenants enrolled in the screen-contract rollout
//   - PreconditionEvaluator: runs an edge's blockers against an order snapshot
//   - TransitionStrategy: the legacy and contract authorization paths that
//     coexist during the contract migration window
//
// Everything here is pure and side-effect free; state changes happen only in
// the application layer through the transition executor.
package services
