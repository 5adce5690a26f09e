package services

import (
	"errors"
	"fmt"
	"time"

	"lakd/internal/models"
)

var (
	// ErrSundayNoActivity blocks normal-mode saves on Sundays. The special
	// day types are still allowed.
	ErrSundayNoActivity = errors.New("no activity on Sunday")
	ErrTemplateMissing  = errors.New("no template available for this day")
)

// Classification is the weekday-based template selection. TemplateID is
// empty for Sundays.
type Classification struct {
	TemplateID string
	Workday    bool
}

// BuildInput carries everything a day build needs. There is no ambient
// date cursor or mode flag: callers pass the full intent each time.
type BuildInput struct {
	Date          string         `json:"date"`
	DayType       models.DayType `json:"dayType"`
	PasienUmum    int            `json:"pasienUmum"`
	PasienRujukan int            `json:"pasienRujukan"`
	PasienKhusus  int            `json:"pasienKhusus"`
	MeetingName   string         `json:"meetingName"`
	SickLeaveNote string         `json:"sickLeaveNote"`
	HolidayName   string         `json:"holidayName"`
}

type DayBuilderServiceInterface interface {
	Classify(date time.Time) Classification
	Build(in BuildInput) (*models.DayRecord, error)
}

type DayBuilderService struct {
	templates TemplateServiceInterface
}

func NewDayBuilderService(templates TemplateServiceInterface) DayBuilderServiceInterface {
	return &DayBuilderService{templates: templates}
}

// Classify is a pure function of the weekday: Saturday gets the
// short-hours template, Mon/Tue/Thu the assembly template, Wed/Fri the
// preparation template, Sunday nothing.
func (ds *DayBuilderService) Classify(date time.Time) Classification {
	switch date.Weekday() {
	case time.Sunday:
		return Classification{}
	case time.Saturday:
		return Classification{TemplateID: models.TemplateSaturday, Workday: true}
	case time.Monday, time.Tuesday, time.Thursday:
		return Classification{TemplateID: models.TemplateWeekdayApel, Workday: true}
	default:
		return Classification{TemplateID: models.TemplateWeekdayPrep, Workday: true}
	}
}

func (ds *DayBuilderService) Build(in BuildInput) (*models.DayRecord, error) {
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", in.Date, err)
	}
	if in.DayType == "" {
		in.DayType = models.DayTypeNormal
	}

	rec := &models.DayRecord{
		Tanggal:       in.Date,
		Hari:          models.DayName(date),
		PasienUmum:    in.PasienUmum,
		PasienRujukan: in.PasienRujukan,
		PasienKhusus:  in.PasienKhusus,
	}

	switch in.DayType {
	case models.DayTypeSickLeave:
		note := orDefault(in.SickLeaveNote, "Izin Sakit")
		rec.Activities = []models.ActivityEntry{{
			JamMulai:   "-",
			JamSelesai: "-",
			Kegiatan:   "Izin Sakit: " + note,
			Kode:       models.KodeIzinSakit,
			Volume:     "-",
			Menit:      0,
		}}
		rec.SickLeaveNote = in.SickLeaveNote
		rec.SetDayType(models.DayTypeSickLeave)

	case models.DayTypeHoliday:
		name := orDefault(in.HolidayName, "Libur Nasional")
		rec.Activities = []models.ActivityEntry{{
			JamMulai:   "-",
			JamSelesai: "-",
			Kegiatan:   "Libur Nasional: " + name,
			Kode:       models.KodeLibur,
			Volume:     "-",
			Menit:      0,
		}}
		rec.HolidayName = in.HolidayName
		rec.SetDayType(models.DayTypeHoliday)

	case models.DayTypeMeeting:
		name := orDefault(in.MeetingName, "Rapat")
		rec.Activities = []models.ActivityEntry{{
			JamMulai:   "07:30",
			JamSelesai: "15:00",
			Kegiatan:   name,
			Kode:       models.KodeRapat,
			Volume:     "1 kegiatan",
			Menit:      450,
		}}
		rec.MeetingName = in.MeetingName
		rec.SetDayType(models.DayTypeMeeting)

	default:
		class := ds.Classify(date)
		if !class.Workday {
			return nil, ErrSundayNoActivity
		}
		tpl, ok := ds.templates.GetByID(class.TemplateID)
		if !ok {
			return nil, ErrTemplateMissing
		}
		rec.Activities = make([]models.ActivityEntry, 0, len(tpl.Activities))
		for _, act := range tpl.Activities {
			menit, err := models.Duration(act.JamMulai, act.JamSelesai)
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", tpl.ID, err)
			}
			rec.Activities = append(rec.Activities, models.ActivityEntry{
				JamMulai:   act.JamMulai,
				JamSelesai: act.JamSelesai,
				Kegiatan:   buildKegiatan(act, in),
				Kode:       act.Kode,
				Volume:     "1 kegiatan",
				Menit:      menit,
			})
		}
		rec.SetDayType(models.DayTypeNormal)
	}

	rec.RecomputeTotal()
	return rec, nil
}

// buildKegiatan reconstitutes an entry description: the clinic codes get
// the day's patient counts interpolated, everything else keeps the
// template text.
func buildKegiatan(act models.TemplateActivity, in BuildInput) string {
	switch act.Kode {
	case models.KodePoliUmum:
		return fmt.Sprintf("Pelayanan poli umum : %d pasien rujukan : %d pasien", in.PasienUmum, in.PasienRujukan)
	case models.KodePoliKhusus:
		return fmt.Sprintf("Pemeriksaan poli khusus : %d pasien", in.PasienKhusus)
	default:
		return act.Kegiatan
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
