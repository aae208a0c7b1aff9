package realtime

// Operation of an appointment change event, as reported by the database
// trigger (TG_OP).
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
)

// AppointmentEvent is the payload published by the appointments trigger.
// It carries identifiers only: pg_notify caps payloads at about 8000 bytes
// and notes are free text, so the trigger never serializes the row. A view
// that receives an event re-queries the calendar for the row; delivery is
// at-least-once, and a view that misses events recovers the same way.
type AppointmentEvent struct {
	Op            string `json:"op"`
	SalonID       int64  `json:"salon_id"`
	AppointmentID int64  `json:"appointment_id"`
	Status        string `json:"status"`
}
