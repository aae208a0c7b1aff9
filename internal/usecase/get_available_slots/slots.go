package get_available_slots

import (
	"errors"
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// generateSlots computes the bookable start times for one resolved day
// window. Candidates start at the opening time and advance in fixed
// 30-minute steps; a candidate survives only if
//
//   - the service finishes by closing time,
//   - the service interval does not run into the lunch break,
//   - no active appointment overlaps the service interval,
//   - for today, it starts strictly after now + the look-ahead margin.
//
// Booked slots are excluded by true interval overlap against each
// appointment's duration, not by exact start-time equality: an appointment
// occupies [time, time+duration), so a long service blocks every candidate
// it would collide with.
func generateSlots(
	window *domain.DayWindow,
	serviceDuration int,
	appointments []*domain.Appointment,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	var cutoff types.TimeString
	sameDay := isSameDay(requestDate, now)
	if sameDay {
		var err error
		cutoff, err = types.NewTimeString(now).AddMinutes(domain.LookAheadMarginMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			// The margin reaches past midnight: nothing today is bookable.
			return slots, nil
		}
		if err != nil {
			return nil, err
		}
	}

	for candidate := window.Open; !candidate.IsAfter(window.Close); {
		// A service that would run past midnight exceeds any close time.
		end, err := candidate.AddMinutes(serviceDuration)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		if end.IsAfter(window.Close) {
			break
		}

		ok := true

		if window.Lunch != nil &&
			intervalsOverlap(candidate, end, window.Lunch.Start, window.Lunch.End) {
			ok = false
		}

		if ok && sameDay && !candidate.IsAfter(cutoff) {
			ok = false
		}

		if ok {
			taken, err := slotConflicts(candidate, end, appointments)
			if err != nil {
				return nil, err
			}
			ok = !taken
		}

		if ok {
			slots = append(slots, candidate)
		}

		next, err := candidate.AddMinutes(domain.SlotGranularityMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		candidate = next
	}

	return slots, nil
}

// slotConflicts reports whether the candidate interval overlaps any active
// appointment. Cancelled appointments free their slot and are skipped;
// the repository filter already excludes them, this guard is for callers
// passing unfiltered lists.
func slotConflicts(start, end types.TimeString, appointments []*domain.Appointment) (bool, error) {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			return false, err
		}

		if intervalsOverlap(start, end, appt.AppointmentTime, apptEnd) {
			return true, nil
		}
	}
	return false, nil
}

// intervalsOverlap checks real overlap with strict inequalities: intervals
// that merely touch at a boundary do not conflict.
func intervalsOverlap(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
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
