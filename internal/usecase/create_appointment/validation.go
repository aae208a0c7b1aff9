package create_appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Brazilian phone: 10 digits (landline) or 11 (mobile with the ninth
	// digit), formatting characters ignored.
	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		digits := stripNonDigits(fl.Field().String())
		return len(digits) == 10 || len(digits) == 11
	})
	return v
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateRequest validates the request fields.
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := validate.Struct(req.Client); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateWindow checks that the full service interval fits the open
// window and does not run into the lunch break.
func validateWindow(window *domain.DayWindow, start, end types.TimeString) error {
	if start.IsBefore(window.Open) || end.IsAfter(window.Close) {
		return ErrOutsideOpeningHours
	}

	if window.Lunch != nil &&
		start.IsBefore(window.Lunch.End) && end.IsAfter(window.Lunch.Start) {
		return ErrOutsideOpeningHours
	}

	return nil
}

// validateNotice rejects same-day bookings starting inside the notice
// margin. Future dates always pass.
func validateNotice(date time.Time, start types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(domain.LookAheadMarginMinutes)
	if errors.Is(err, types.ErrTimeOverflow) {
		// The margin reaches past midnight: no same-day start qualifies.
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.LookAheadMarginMinutes)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if !start.IsAfter(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.LookAheadMarginMinutes)
	}

	return nil
}

// hasOverlappingAppointment reports whether any active appointment
// overlaps the requested interval. Strict inequalities: intervals that
// merely touch do not conflict.
func hasOverlappingAppointment(start, end types.TimeString, appointments []*domain.Appointment) (bool, error) {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			return false, err
		}

		if appt.AppointmentTime.IsBefore(end) && apptEnd.IsAfter(start) {
			return true, nil
		}
	}
	return false, nil
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the date is before today.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
