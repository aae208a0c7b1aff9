package finance

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("finance: appointment not found")

	// ErrNotCompleted is returned when the appointment is not in the
	// completed status
	ErrNotCompleted = errors.New("finance: appointment is not completed")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("finance: internal error")
)
