package domain

import "time"

// Event types emitted by the appointment store.
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusChanged = "appointment.status_changed"
)

// Event describes an appointment lifecycle change.
type Event struct {
	Type        string      `json:"type"`
	Appointment Appointment `json:"appointment"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
