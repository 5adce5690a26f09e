package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ClockToMinutes parses an "H:MM" or "HH:MM" wall-clock string into
// minutes since midnight.
func ClockToMinutes(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// MinutesToClock renders minutes since midnight as a zero-padded "HH:MM".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration returns end − start in minutes. Entries crossing midnight are
// rejected: a negative span is an error, not a wraparound.
func Duration(start, end string) (int, error) {
	s, err := ClockToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ClockToMinutes(end)
	if err != nil {
		return 0, err
	}
	if e < s {
		return 0, fmt.Errorf("activity %s - %s ends before it starts", start, end)
	}
	return e - s, nil
}

var dayNames = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

const DateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" record key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayName returns the Indonesian weekday name for a date.
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// MonthName returns the Indonesian name for a 1-based month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthPrefix is the "YYYY-MM" prefix shared by all record keys of a month.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
