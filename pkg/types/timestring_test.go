package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"plain HH:MM", "09:30", "09:30", false},
		{"seconds dropped", "14:30:00", "14:30", false},
		{"midnight", "00:00", "00:00", false},
		{"last minute of the day", "23:59", "23:59", false},
		{"hour out of range", "24:00", "", true},
		{"minute out of range", "12:60", "", true},
		{"garbage", "not-a-time", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalMinutes(t *testing.T) {
	tests := []struct {
		ts   TimeString
		want int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.ts.TotalMinutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("bad").TotalMinutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		ts      TimeString
		minutes int
		want    TimeString
	}{
		{"within the hour", "09:00", 30, "09:30"},
		{"across hours", "09:45", 30, "10:15"},
		{"zero minutes", "12:00", 0, "12:00"},
		{"negative within day", "12:00", -90, "10:30"},
		{"lands on last minute", "23:00", 59, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutesDoesNotWrapPastMidnight(t *testing.T) {
	tests := []struct {
		name    string
		ts      TimeString
		minutes int
	}{
		{"ends exactly at midnight", "23:00", 60},
		{"ends past midnight", "23:30", 60},
		{"last minute plus one", "23:59", 1},
		{"before start of day", "00:30", -60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ts.AddMinutes(tt.minutes)
			assert.ErrorIs(t, err, ErrTimeOverflow)
		})
	}
}

func TestComparisonsAreStrict(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("18:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Two-digit padding keeps lexicographic order in line with clock order.
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("02:00").IsBefore("13:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 14, 8, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan("25:00:00"), ErrInvalidTimeString)
	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("banana").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
