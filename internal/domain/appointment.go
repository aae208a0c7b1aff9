package domain

import (
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// legalTransitions encodes the appointment state machine:
//
//	pending   → confirmed | cancelled
//	confirmed → completed | cancelled
//	completed, cancelled → (terminal)
var legalTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValid reports whether the status is one of the known values.
func (s AppointmentStatus) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// IsTerminal reports whether the status admits no further transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s
// to next. Every transition not listed above is illegal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a client booking at a salon.
//
// Service name, price and duration are denormalized at booking time:
// later edits to the service catalog never change existing appointments.
type Appointment struct {
	ID        int64
	SalonID   int64
	ServiceID int64
	ClientID  int64

	AppointmentDate time.Time // calendar date, no time component
	AppointmentTime types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized service snapshot
	ServiceName  string
	ServicePrice float64

	// Free text; may carry an additional-services block (see finance parser)
	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled reports whether the appointment may still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status.CanTransitionTo(StatusCancelled)
}

// EndTime returns the time the appointment finishes.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.AppointmentTime.AddMinutes(a.DurationMinutes)
}

// SalonAppointmentsFilter is the filter for salon calendar queries.
type SalonAppointmentsFilter struct {
	SalonID          int64
	Date             *time.Time         // exact calendar date, if set
	Status           *AppointmentStatus // exact status, if set
	IncludeCancelled bool               // when false and Status is nil, cancelled rows are excluded
}
