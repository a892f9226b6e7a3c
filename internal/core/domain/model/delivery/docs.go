// Package delivery provides domain entities and business logic for the
// delivery lifecycle in the freight system. It implements the Delivery
// aggregate root with its status state machine and tracking audit trail.
//
// The package includes:
//   - Delivery: The aggregate root that owns the status field and mutates it
//     only through the transition guard
//   - Status: A state machine whose legality rules live in an explicit data
//     table rather than control flow
//   - Tracking: An immutable audit record appended on every successful
//     status transition
//
// Key business rules:
//   - Normal progress is InProgress -> PickedUp -> InTransit -> Delivered -> Completed
//   - Cancelled is reachable from any non-terminal state and requires a reason
//   - Completed and Cancelled are terminal; no transition leaves them
//   - Every transition requires a caller-supplied location
//   - Completion through confirmation additionally requires the code handed
//     out at creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
