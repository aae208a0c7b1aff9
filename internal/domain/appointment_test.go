package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, false},
		{"completed to pending", StatusCompleted, StatusPending, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTerminalStatesAdmitNoTransitions(t *testing.T) {
	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for _, terminal := range []AppointmentStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"terminal status %s must not transition to %s", terminal, next)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("in_progress").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentIsActive(t *testing.T) {
	a := &Appointment{Status: StatusPending}
	assert.True(t, a.IsActive())

	a.Status = StatusCompleted
	assert.True(t, a.IsActive(), "completed appointments keep their slot in history")

	a.Status = StatusCancelled
	assert.False(t, a.IsActive(), "cancelled appointments free the slot")
}
