package excel

import (
	"math"
	"strconv"
	"strings"
	"time"

	"lakd/internal/models"
)

// Spreadsheet serials count days since 1900; 25569 is the offset to the
// unix epoch.
const serialEpochOffset = 25569

// SerialToDate converts a spreadsheet date serial to a UTC calendar day.
// The fractional part carries the time of day and is dropped here.
func SerialToDate(serial float64) time.Time {
	return time.Unix(int64(math.Floor(serial)-serialEpochOffset)*86400, 0).UTC()
}

// CellDate coerces a raw cell into an ISO "YYYY-MM-DD" key. It accepts
// date serials and ISO strings; anything else is rejected.
func CellDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < 1 {
			return "", false
		}
		return SerialToDate(serial).Format(models.DateLayout), true
	}
	if t, err := models.ParseDate(s); err == nil {
		return t.Format(models.DateLayout), true
	}
	return "", false
}

// CellTime coerces a raw cell into a zero-padded "HH:MM" clock string.
// Numeric cells are read as day fractions rounded to the nearest minute,
// clock strings are normalized, and the "-" placeholder used on
// non-working days passes through unchanged.
func CellTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if s == "-" {
		return s
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		frac := v
		if v >= 1 {
			frac = v - math.Floor(v)
		}
		minutes := int(math.Round(frac*1440)) % 1440
		return models.MinutesToClock(minutes)
	}
	if minutes, err := models.ClockToMinutes(s); err == nil {
		return models.MinutesToClock(minutes)
	}
	return ""
}
