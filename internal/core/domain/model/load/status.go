package load

import (
	"fmt"

	"loadboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with defined transitions so loads always
// follow the marketplace workflow.
//
// State transitions:
//
//	Open ──> Assigned ──> InProgress ──> Completed
//	              │                          ▲
//	              └──────────────────────────┘
//	          (driver "end trip" fast path)
//
// Completed is terminal. There are no back-transitions. The Assigned ->
// Completed fast path exists because a driver may end a trip without ever
// reporting it started.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of a posted load. Only Open loads are
	// visible on the marketplace and only Open loads may be deleted.
	Open

	// Assigned indicates a driver has committed to the load, either by
	// accepting it or by being selected by the owning shipper.
	Assigned

	// InProgress indicates the assigned driver has started the trip.
	InProgress

	// Completed indicates the load has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns the wire names of every Status value.
// The names match the values persisted by the store.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Open:       "open",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// getValidStatusStrings returns only the valid Status values,
// to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "open",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// ParseStatus converts a wire name ("open", "assigned", "in_progress",
// "completed") into a Status. Unrecognized names are invalid.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Open, Assigned, InProgress, and Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid
// values. It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// ValidateCanHaveDriver validates the consistency between status and driver
// assignment: a load has an assigned driver if and only if it has left Open.
//
// Parameters:
//   - driver: whether the load has a driver assigned
//
// Returns a validation error if status and driver assignment are inconsistent.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == Open {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}
	if !driver && s != Open {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}
	return nil
}

// Assign transitions the status to Assigned.
//
// The only valid source is Open: assignment arbitration happens exactly once
// per load, and the winner holds it until completion. Reassignment is not
// supported by the marketplace.
//
// Returns (Assigned, nil) on a valid transition or (0, error) otherwise.
func (s Status) Assign() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// The only valid source is Assigned. Starting is optional in the lifecycle:
// Complete also accepts the Assigned fast path.
//
// Returns (InProgress, nil) on a valid transition or (0, error) otherwise.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid sources are Assigned (the driver "end trip" fast path) and
// InProgress. Completed is terminal, so completing an already completed
// load is rejected here and surfaces as a zero-row no-op at the store.
//
// Returns (Completed, nil) on a valid transition or (0, error) otherwise.
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}
