package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"7:30", 450},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ClockToMinutes(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}
}

func TestClockToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "-", "24:00", "12:60", "7.30", "730", "ab:cd"} {
		_, err := ClockToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "07:30", MinutesToClock(450))
	assert.Equal(t, "15:00", MinutesToClock(900))
}

func TestDuration(t *testing.T) {
	d, err := Duration("07:30", "15:00")
	require.NoError(t, err)
	assert.Equal(t, 450, d)

	d, err = Duration("08:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestDuration_RejectsBackwardSpan(t *testing.T) {
	_, err := Duration("15:00", "07:30")
	assert.Error(t, err)
}

func TestDayName(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Senin", DayName(monday))
	assert.Equal(t, "Minggu", DayName(monday.AddDate(0, 0, -1)))
	assert.Equal(t, "Sabtu", DayName(monday.AddDate(0, 0, 5)))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(1))
	assert.Equal(t, "Juni", MonthName(6))
	assert.Equal(t, "Desember", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "2025-06", MonthPrefix(2025, 6))
	assert.Equal(t, "2025-11", MonthPrefix(2025, 11))
}
