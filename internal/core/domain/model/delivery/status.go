package delivery

import (
	"errors"
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct fulfillment workflow.
//
// State transitions:
//
//	InProgress ──> PickedUp ──> InTransit ──> Delivered ──> Completed
//	     │             │             │             │
//	     └─────────────┴──────┬──────┴─────────────┘
//	                          v
//	                      Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
// Same-state transitions and state skipping are rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the initial status set when a cargo owner accepts
	// a driver for a pending cargo request.
	InProgress

	// PickedUp indicates the driver has collected the cargo.
	PickedUp

	// InTransit indicates the cargo is on its way to the destination.
	InTransit

	// Delivered indicates the cargo has arrived and awaits confirmation.
	Delivered

	// Completed indicates the delivery was confirmed by the recipient.
	// This is a terminal state.
	Completed

	// Cancelled indicates the delivery was aborted before completion.
	// Reachable from any non-terminal state. This is a terminal state.
	Cancelled
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// Callers classify transition-guard rejections with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected status transition.
// It carries both the current and the requested status so callers can
// include them in diagnostics or HTTP error payloads.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transition is a (from, to) pair used as the key of the legality table.
type transition struct {
	from Status
	to   Status
}

// getLegalTransitions returns the single source of truth for status legality.
// Every transition not present in this table is rejected, including
// same-state "transitions" and skipping of intermediate states.
func getLegalTransitions() map[transition]struct{} {
	return map[transition]struct{}{
		{InProgress, PickedUp}:  {},
		{PickedUp, InTransit}:   {},
		{InTransit, Delivered}:  {},
		{Delivered, Completed}:  {},
		{InProgress, Cancelled}: {},
		{PickedUp, Cancelled}:   {},
		{InTransit, Cancelled}:  {},
		{Delivered, Cancelled}:  {},
	}
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		InProgress: "InProgress",
		PickedUp:   "PickedUp",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, keyed by name.
// Used to validate and parse statuses arriving from external sources.
func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"InProgress": InProgress,
		"PickedUp":   PickedUp,
		"InTransit":  InTransit,
		"Delivered":  Delivered,
		"Completed":  Completed,
		"Cancelled":  Cancelled,
	}
}

// StatusFromString parses a status name into a Status value.
// Returns a ValueIsInvalidError for names outside the closed enumeration.
//
// Example:
//
//	status, err := delivery.StatusFromString("InTransit")
//	if err != nil {
//	    // "InTransit" was not a member of the enumeration
//	}
func StatusFromString(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", s))
	}
	return status, nil
}

// Validate checks if the Status value is a member of the closed enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the (s, to) pair is present in the
// legality table. It performs the lookup without side effects, which keeps
// the legality rules independently testable.
func (s Status) CanTransitionTo(to Status) bool {
	_, ok := getLegalTransitions()[transition{from: s, to: to}]
	return ok
}

// TransitionTo returns the requested status if the transition is legal.
//
// Returns:
//   - (to, nil) when (s, to) is in the legality table
//   - (Unknown, *InvalidTransitionError) otherwise, carrying both statuses
//
// This method is used by Delivery.Transition to enforce the state machine.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, NewInvalidTransitionError(s, to)
	}
	return to, nil
}
