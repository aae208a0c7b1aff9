package stream_appointments

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/realtime"
)

type fakeEvents struct {
	ch chan realtime.AppointmentEvent
}

func (f *fakeEvents) Subscribe(int64) (<-chan realtime.AppointmentEvent, func()) {
	return f.ch, func() {}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// The stream must keep working on writers without write-deadline support
// (httptest.ResponseRecorder is one); with support, the deadline is
// cleared so streams outlive the server write timeout.
func TestHandleStreamsEventFrames(t *testing.T) {
	events := &fakeEvents{ch: make(chan realtime.AppointmentEvent, 1)}
	events.ch <- realtime.AppointmentEvent{
		Op:            realtime.OpInsert,
		SalonID:       3,
		AppointmentID: 9,
		Status:        "pending",
	}

	h := NewHandler(events, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/api/v1/salons/3/appointments/stream", nil).WithContext(ctx)
	req = mux.SetURLVars(req, map[string]string{"salonId": "3"})
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(),
		`data: {"op":"INSERT","salon_id":3,"appointment_id":9,"status":"pending"}`)
}

func TestHandleRejectsInvalidSalonID(t *testing.T) {
	h := NewHandler(&fakeEvents{ch: make(chan realtime.AppointmentEvent)}, nopLogger{})

	req := httptest.NewRequest("GET", "/api/v1/salons/abc/appointments/stream", nil)
	req = mux.SetURLVars(req, map[string]string{"salonId": "abc"})
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, 400, rec.Code)
}
