package stream_appointments

import (
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/realtime"
)

// EventSource hands out per-salon subscriptions to appointment change
// events.
type EventSource interface {
	Subscribe(salonID int64) (<-chan realtime.AppointmentEvent, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
