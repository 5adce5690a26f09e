package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecord() *DayRecord {
	return &DayRecord{
		Tanggal:       "2025-06-02",
		Hari:          "Senin",
		PasienUmum:    5,
		PasienRujukan: 2,
		PasienKhusus:  3,
		MeetingName:   "Rapat program",
		SickLeaveNote: "demam",
		HolidayName:   "Idul Adha",
	}
}

func TestSetDayType_MutuallyExclusive(t *testing.T) {
	rec := sampleRecord()
	rec.SetDayType(DayTypeMeeting)

	assert.Equal(t, DayTypeMeeting, rec.DayType)
	assert.Equal(t, "Rapat program", rec.MeetingName)
	assert.Empty(t, rec.SickLeaveNote)
	assert.Empty(t, rec.HolidayName)
	assert.Equal(t, KeteranganTugas, rec.Keterangan)
}

func TestSetDayType_SickLeaveZeroesPatients(t *testing.T) {
	rec := sampleRecord()
	rec.SetDayType(DayTypeSickLeave)

	assert.Equal(t, KeteranganSakit, rec.Keterangan)
	assert.Equal(t, "demam", rec.SickLeaveNote)
	assert.Empty(t, rec.MeetingName)
	assert.Zero(t, rec.PasienUmum)
	assert.Zero(t, rec.PasienRujukan)
	assert.Zero(t, rec.PasienKhusus)
}

func TestSetDayType_HolidayZeroesPatients(t *testing.T) {
	rec := sampleRecord()
	rec.SetDayType(DayTypeHoliday)

	assert.Equal(t, KeteranganLibur, rec.Keterangan)
	assert.Equal(t, "Idul Adha", rec.HolidayName)
	assert.Zero(t, rec.TotalPatients())
}

func TestSetDayType_NormalKeepsPatients(t *testing.T) {
	rec := sampleRecord()
	rec.SetDayType(DayTypeNormal)

	assert.Equal(t, KeteranganTugas, rec.Keterangan)
	assert.Equal(t, 10, rec.TotalPatients())
	assert.Empty(t, rec.MeetingName)
	assert.Empty(t, rec.SickLeaveNote)
	assert.Empty(t, rec.HolidayName)
}

func TestDayTypeForKeterangan(t *testing.T) {
	assert.Equal(t, DayTypeSickLeave, DayTypeForKeterangan("IS"))
	assert.Equal(t, DayTypeHoliday, DayTypeForKeterangan("LN"))
	assert.Equal(t, DayTypeNormal, DayTypeForKeterangan("TJ"))
	assert.Equal(t, DayTypeNormal, DayTypeForKeterangan(""))
}

func TestRecomputeTotal(t *testing.T) {
	rec := &DayRecord{
		Activities: []ActivityEntry{
			{Menit: 30},
			{Menit: 270},
			{Menit: 90},
			{Menit: 60},
		},
	}
	rec.RecomputeTotal()
	assert.Equal(t, 450, rec.TotalMenit)
}
