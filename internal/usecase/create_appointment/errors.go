package create_appointment

import "errors"

var (
	// ErrSalonNotFound is returned when the salon does not exist
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrServiceNotFound is returned when the service does not exist in the salon
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotBookable is returned when the service is inactive
	ErrServiceNotBookable = errors.New("create_appointment: service is not bookable")

	// ErrSalonClosed is returned when the salon is closed on the requested date
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideOpeningHours is returned when the service does not fit the open window
	ErrOutsideOpeningHours = errors.New("create_appointment: time is outside opening hours")

	// ErrSlotTaken is returned when the requested interval overlaps an active appointment
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidDate is returned when the date is in the past
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrTooLateToBook is returned when the slot starts inside the notice margin
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_appointment: internal error")
)
