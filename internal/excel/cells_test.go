package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialToDate(t *testing.T) {
	assert.Equal(t, "2025-06-02", SerialToDate(45810).Format("2006-01-02"))
	// Fractional part carries the time of day and is dropped.
	assert.Equal(t, "2025-06-02", SerialToDate(45810.75).Format("2006-01-02"))
	assert.Equal(t, "1970-01-01", SerialToDate(25569).Format("2006-01-02"))
}

func TestCellDate(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"45810", "2025-06-02", true},
		{"45810.3125", "2025-06-02", true},
		{"2025-06-02", "2025-06-02", true},
		{" 2025-06-02 ", "2025-06-02", true},
		{"0.5", "", false},
		{"", "", false},
		{"Senin", "", false},
		{"02/06/2025", "", false},
	}
	for _, tt := range tests {
		got, ok := CellDate(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.expected, got, tt.raw)
	}
}

func TestCellTime(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"0.3125", "07:30"},
		{"0.625", "15:00"},
		{"45810.3125", "07:30"},
		{"07:30", "07:30"},
		{"7:30", "07:30"},
		{"-", "-"},
		{"", ""},
		{"apel pagi", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CellTime(tt.raw), tt.raw)
	}
}
