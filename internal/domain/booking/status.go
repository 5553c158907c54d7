package booking

import "github.com/hammam97-h/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// transitions is the admin-facing state machine. cancelled and completed are
// terminal; no-op transitions are rejected.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition decides whether an admin status change is allowed.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if to == allowed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// InitialStatus is the status of every freshly booked appointment.
func InitialStatus() Status {
	return StatusPending
}
