package get_available_slots

import "errors"

var (
	// ErrSalonNotFound is returned when the salon does not exist
	ErrSalonNotFound = errors.New("get_available_slots: salon not found")

	// ErrServiceNotFound is returned when the service does not exist in the salon
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotBookable is returned when the service is inactive
	ErrServiceNotBookable = errors.New("get_available_slots: service is not bookable")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
