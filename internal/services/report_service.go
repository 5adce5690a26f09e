package services

import (
	"math"
	"sort"

	"lakd/internal/models"
)

// MonthSummary extends MonthStats with what the exporter needs: sorted
// dates and the leave-day split.
type MonthSummary struct {
	Stats         models.MonthStats
	Dates         []string
	SickLeaveDays int
	HolidayDays   int
}

type ReportServiceInterface interface {
	MonthStats(year, month int) models.MonthStats
	MonthSummary(year, month int) MonthSummary
	AttendancePercentage(totalDays, leaveDays int) float64
}

type ReportService struct {
	store StoreServiceInterface
}

func NewReportService(store StoreServiceInterface) ReportServiceInterface {
	return &ReportService{store: store}
}

func (rs *ReportService) MonthStats(year, month int) models.MonthStats {
	return rs.MonthSummary(year, month).Stats
}

func (rs *ReportService) MonthSummary(year, month int) MonthSummary {
	records := rs.store.MonthRecords(year, month)

	summary := MonthSummary{Dates: make([]string, 0, len(records))}
	for date, day := range records {
		summary.Dates = append(summary.Dates, date)
		summary.Stats.TotalDays++
		summary.Stats.TotalMinutes += day.TotalMenit
		summary.Stats.TotalActivities += len(day.Activities)
		summary.Stats.PatientUmum += day.PasienUmum
		summary.Stats.PatientRujukan += day.PasienRujukan
		summary.Stats.PatientKhusus += day.PasienKhusus

		switch day.DayType {
		case models.DayTypeSickLeave:
			summary.SickLeaveDays++
		case models.DayTypeHoliday:
			summary.HolidayDays++
		}
	}
	summary.Stats.TotalPatients = summary.Stats.PatientUmum + summary.Stats.PatientRujukan + summary.Stats.PatientKhusus
	sort.Strings(summary.Dates)
	return summary
}

// AttendancePercentage is (effective days / total days) * 100 rounded to
// one decimal. Months without records or without leave days report 100:
// there is nothing to be absent from.
func (rs *ReportService) AttendancePercentage(totalDays, leaveDays int) float64 {
	if totalDays <= 0 || leaveDays <= 0 {
		return 100
	}
	pct := float64(totalDays-leaveDays) / float64(totalDays) * 100
	return math.Round(pct*10) / 10
}
