package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidTransition is returned when the status change is not allowed
	// by the lifecycle
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrCannotCancel is returned when the appointment is in a terminal state
	ErrCannotCancel = errors.New("appointments: appointment cannot be cancelled")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("appointments: internal error")
)
