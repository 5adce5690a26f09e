package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_SetCopiesInput(t *testing.T) {
	rs := NewRecordStore()
	rec := &DayRecord{Tanggal: "2025-06-02", Activities: []ActivityEntry{{Menit: 30}}}
	rs.Set("2025-06-02", rec)

	rec.Activities[0].Menit = 999
	rec.TotalMenit = 999

	stored, ok := rs.Get("2025-06-02")
	require.True(t, ok)
	assert.Equal(t, 30, stored.Activities[0].Menit)
	assert.Equal(t, 0, stored.TotalMenit)
}

func TestRecordStore_GetCopiesOutput(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-02", &DayRecord{Tanggal: "2025-06-02", Activities: []ActivityEntry{{Menit: 30}}})

	first, _ := rs.Get("2025-06-02")
	first.Activities[0].Menit = 999

	second, _ := rs.Get("2025-06-02")
	assert.Equal(t, 30, second.Activities[0].Menit)
}

func TestRecordStore_Delete(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-02", &DayRecord{Tanggal: "2025-06-02"})

	assert.True(t, rs.Delete("2025-06-02"))
	assert.False(t, rs.Delete("2025-06-02"))
	assert.Equal(t, 0, rs.Len())
}

func TestRecordStore_MonthFiltersByPrefix(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-02", &DayRecord{Tanggal: "2025-06-02"})
	rs.Set("2025-06-30", &DayRecord{Tanggal: "2025-06-30"})
	rs.Set("2025-07-01", &DayRecord{Tanggal: "2025-07-01"})

	june := rs.Month(2025, 6)
	assert.Len(t, june, 2)
	assert.Contains(t, june, "2025-06-02")
	assert.Contains(t, june, "2025-06-30")
}

func TestRecordStore_DatesSorted(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-30", &DayRecord{})
	rs.Set("2025-06-02", &DayRecord{})
	rs.Set("2025-06-15", &DayRecord{})

	assert.Equal(t, []string{"2025-06-02", "2025-06-15", "2025-06-30"}, rs.Dates())
}

func TestRecordStore_PutDataReplacesEverything(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-02", &DayRecord{})

	rs.PutData(map[string]*DayRecord{"2025-07-01": {Tanggal: "2025-07-01"}})

	assert.Equal(t, 1, rs.Len())
	_, ok := rs.Get("2025-06-02")
	assert.False(t, ok)
	_, ok = rs.Get("2025-07-01")
	assert.True(t, ok)
}

func TestRecordStore_PutDataNilResets(t *testing.T) {
	rs := NewRecordStore()
	rs.Set("2025-06-02", &DayRecord{})

	rs.PutData(nil)
	assert.Equal(t, 0, rs.Len())
}
