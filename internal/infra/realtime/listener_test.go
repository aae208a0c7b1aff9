package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDispatchPublishesSlimTriggerPayload(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(12)
	defer cancel()

	b := &Bridge{hub: hub, logger: nopLogger{}}
	b.dispatch(`{"op":"UPDATE","salon_id":12,"appointment_id":88,"status":"confirmed"}`)

	select {
	case event := <-ch:
		assert.Equal(t, OpUpdate, event.Op)
		assert.Equal(t, int64(12), event.SalonID)
		assert.Equal(t, int64(88), event.AppointmentID)
		assert.Equal(t, "confirmed", event.Status)
	default:
		t.Fatal("notification was not published to the hub")
	}
}

func TestDispatchDropsBadPayloads(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(12)
	defer cancel()

	b := &Bridge{hub: hub, logger: nopLogger{}}

	b.dispatch(`not json`)
	b.dispatch(`{"op":"INSERT","appointment_id":5,"status":"pending"}`) // no salon_id

	assert.Empty(t, ch)
}
