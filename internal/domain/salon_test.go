package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

func TestWindowForOpenDay(t *testing.T) {
	ws := WeeklySchedule{
		"monday": {
			Open:  "09:00",
			Close: "18:00",
			LunchBreak: &LunchBreak{
				Enabled: true,
				Start:   "12:00",
				End:     "13:00",
			},
		},
	}

	window := ws.WindowFor(monday)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("09:00"), window.Open)
	assert.Equal(t, types.TimeString("18:00"), window.Close)
	require.NotNil(t, window.Lunch)
	assert.Equal(t, types.TimeString("12:00"), window.Lunch.Start)
	assert.Equal(t, types.TimeString("13:00"), window.Lunch.End)
}

func TestWindowForClosedDay(t *testing.T) {
	ws := WeeklySchedule{
		"monday": {Closed: true, Open: "09:00", Close: "18:00"},
	}
	assert.Nil(t, ws.WindowFor(monday))
}

func TestWindowForMissingWeekday(t *testing.T) {
	ws := WeeklySchedule{
		"tuesday": {Open: "09:00", Close: "18:00"},
	}
	assert.Nil(t, ws.WindowFor(monday), "a weekday absent from the schedule is closed")
}

func TestWindowForMalformedConfigIsClosed(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
	}{
		{"missing open", DaySchedule{Close: "18:00"}},
		{"missing close", DaySchedule{Open: "09:00"}},
		{"open equals close", DaySchedule{Open: "09:00", Close: "09:00"}},
		{"open after close", DaySchedule{Open: "18:00", Close: "09:00"}},
		{"garbage open", DaySchedule{Open: "soon", Close: "18:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := WeeklySchedule{"monday": tt.day}
			assert.Nil(t, ws.WindowFor(monday), "malformed config must never yield bookable time")
		})
	}
}

func TestWindowForInvalidLunchIsIgnored(t *testing.T) {
	tests := []struct {
		name  string
		lunch *LunchBreak
	}{
		{"disabled", &LunchBreak{Enabled: false, Start: "12:00", End: "13:00"}},
		{"outside window", &LunchBreak{Enabled: true, Start: "08:00", End: "13:00"}},
		{"past close", &LunchBreak{Enabled: true, Start: "17:00", End: "19:00"}},
		{"inverted", &LunchBreak{Enabled: true, Start: "13:00", End: "12:00"}},
		{"malformed times", &LunchBreak{Enabled: true, Start: "midday", End: "13:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := WeeklySchedule{"monday": {Open: "09:00", Close: "18:00", LunchBreak: tt.lunch}}
			window := ws.WindowFor(monday)
			require.NotNil(t, window, "a bad lunch break must not close the day")
			assert.Nil(t, window.Lunch)
		})
	}
}

func TestComponentsTotal(t *testing.T) {
	price, minutes := ComponentsTotal([]ServiceComponent{
		{Name: "Corte", DurationMinutes: 30, Price: 50},
		{Name: "Barba", DurationMinutes: 20, Price: 25},
		{Name: "Sobrancelha", DurationMinutes: 10, Price: 15},
	})
	assert.Equal(t, 90.0, price)
	assert.Equal(t, 60, minutes)

	price, minutes = ComponentsTotal(nil)
	assert.Equal(t, 0.0, price)
	assert.Equal(t, 0, minutes)
}
