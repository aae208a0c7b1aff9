package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// Salon represents a salon and its weekly opening-hours schedule.
// The schedule is owned by the salon admin and mutated only through the
// settings flow; this service reads it to compute bookable slots.
type Salon struct {
	ID           int64
	Name         string
	OpeningHours WeeklySchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to the
// configured day schedule. Stored as jsonb.
type WeeklySchedule map[string]DaySchedule

// DaySchedule is the raw per-weekday configuration as written by the
// settings flow. Open/Close are "HH:MM" strings and may be absent or
// malformed; resolution below treats anything malformed as closed.
type DaySchedule struct {
	Closed     bool        `json:"closed"`
	Open       string      `json:"open"`
	Close      string      `json:"close"`
	LunchBreak *LunchBreak `json:"lunchBreak,omitempty"`
}

// LunchBreak is an optional sub-interval of the open window during which
// no slots are offered.
type LunchBreak struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// DayWindow is a resolved, validated open window for a concrete date.
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
	Lunch *LunchWindow
}

// LunchWindow is a validated lunch interval strictly inside the open window.
type LunchWindow struct {
	Start types.TimeString
	End   types.TimeString
}

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WindowFor resolves the open window for the weekday of the given date.
// Returns nil when the salon is closed that day. Defensive policy: a day
// explicitly marked closed, missing open/close, or with open >= close never
// yields bookable time. A lunch break that is disabled, malformed or not
// strictly inside [open, close] is ignored rather than failing the day.
func (ws WeeklySchedule) WindowFor(date time.Time) *DayWindow {
	day, ok := ws[weekdayKeys[date.Weekday()]]
	if !ok || day.Closed {
		return nil
	}

	open, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return nil
	}
	closeAt, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return nil
	}
	if !open.IsBefore(closeAt) {
		return nil
	}

	window := &DayWindow{Open: open, Close: closeAt}

	if lb := day.LunchBreak; lb != nil && lb.Enabled {
		start, errStart := types.NewTimeStringFromString(lb.Start)
		end, errEnd := types.NewTimeStringFromString(lb.End)
		if errStart == nil && errEnd == nil &&
			start.IsBefore(end) &&
			!start.IsBefore(open) && !end.IsAfter(closeAt) {
			window.Lunch = &LunchWindow{Start: start, End: end}
		}
	}

	return window
}

// Value implements driver.Valuer for jsonb storage.
func (ws WeeklySchedule) Value() (driver.Value, error) {
	if ws == nil {
		return nil, nil
	}
	return json.Marshal(ws)
}

// Scan implements sql.Scanner for jsonb storage.
func (ws *WeeklySchedule) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ws = nil
		return nil
	case []byte:
		return json.Unmarshal(v, ws)
	case string:
		return json.Unmarshal([]byte(v), ws)
	default:
		return fmt.Errorf("domain: cannot scan WeeklySchedule from %T", src)
	}
}
