package cargorequest

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a cargo request as seen by the
// delivery lifecycle. Only the terminal mirroring transitions are modelled
// here; request creation and driver matching happen elsewhere.
//
// State transitions:
//
//	Pending ──> Accepted ──> Completed
//	   │            │
//	   └────────────┴──────> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a posted cargo request.
	Pending

	// Accepted indicates a driver was accepted and a delivery created.
	Accepted

	// Completed mirrors the linked delivery reaching Completed.
	Completed

	// Cancelled mirrors the linked delivery being cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is a member of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
// Only a Pending request can be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", s.String()))
	}
	return Accepted, nil
}

// Complete transitions the status to Completed.
// Only an Accepted request can complete: a delivery exists exactly when
// the request was accepted.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Pending and Accepted requests can be cancelled; terminal ones cannot.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}
	return Cancelled, nil
}
