package appointment

import "github.com/BruksfildServices01/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// ===============================
// Validations
// ===============================

// CanCancel reports whether an appointment in the current status can be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.InvalidInput("invalid_state", "Only confirmed appointments can be cancelled.")
	}
	return nil
}

// CanComplete reports whether an appointment in the current status can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.InvalidInput("invalid_state", "Only confirmed appointments can be completed.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
