package models

import "fmt"

// Activity codes selectable for an entry. The first two clinic codes drive
// patient-count interpolation at day-build time.
const (
	KodePoliUmum   = "Poli Umum"
	KodePoliKhusus = "Poli Khusus"
	KodeApel       = "Apel Pagi"
	KodePersiapan  = "Persiapan"
	KodeAdmin      = "Admin/Laporan"
	KodeRapat      = "Rapat"
	KodeIzinSakit  = "Izin Sakit"
	KodeLibur      = "Libur Nasional"
)

var ActivityCodes = []string{
	KodeApel,
	KodePersiapan,
	KodePoliUmum,
	KodePoliKhusus,
	KodeAdmin,
	"Kunjungan Rumah",
	"Posyandu",
	"Penyuluhan",
	KodeRapat,
	"Lainnya",
}

// TemplateActivity is a time-boxed entry without a computed duration;
// the duration is derived when the template is applied to a date.
type TemplateActivity struct {
	JamMulai   string `json:"jamMulai"`
	JamSelesai string `json:"jamSelesai"`
	Kegiatan   string `json:"kegiatan"`
	Kode       string `json:"kode"`
}

type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Activities  []TemplateActivity `json:"activities"`
}

// Validate checks that every activity has parseable times and a
// non-negative duration.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	for i, act := range t.Activities {
		if _, err := Duration(act.JamMulai, act.JamSelesai); err != nil {
			return fmt.Errorf("activity %d: %w", i+1, err)
		}
	}
	return nil
}

// TotalMinutes sums the entry durations. Validate must have passed.
func (t *Template) TotalMinutes() int {
	total := 0
	for _, act := range t.Activities {
		d, err := Duration(act.JamMulai, act.JamSelesai)
		if err != nil {
			continue
		}
		total += d
	}
	return total
}

// TemplateUpdate is a typed partial update. Nil fields keep the current
// value; a non-nil Activities slice replaces the whole list.
type TemplateUpdate struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Activities  []TemplateActivity `json:"activities,omitempty"`
}

// Apply merges the update into a copy of t and validates the result
// before returning it. The original is untouched on error.
func (u *TemplateUpdate) Apply(t Template) (Template, error) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Activities != nil {
		t.Activities = u.Activities
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Built-in template ids picked by the weekday classification.
const (
	TemplateWeekdayApel = "weekday-apel"
	TemplateWeekdayPrep = "weekday-prep"
	TemplateSaturday    = "saturday"
)

// DefaultTemplates is the seed catalog installed on first use.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:          TemplateWeekdayApel,
			Name:        "Hari Kerja (Apel)",
			Description: "Senin, Selasa, Kamis dengan apel pagi",
			Activities: []TemplateActivity{
				{JamMulai: "07:30", JamSelesai: "08:00", Kegiatan: "Apel pagi", Kode: KodeApel},
				{JamMulai: "08:00", JamSelesai: "12:30", Kegiatan: "Pelayanan poli umum", Kode: KodePoliUmum},
				{JamMulai: "12:30", JamSelesai: "14:00", Kegiatan: "Pemeriksaan poli khusus", Kode: KodePoliKhusus},
				{JamMulai: "14:00", JamSelesai: "15:00", Kegiatan: "Pencatatan dan pelaporan hasil Kegiatan", Kode: KodeAdmin},
			},
		},
		{
			ID:          TemplateWeekdayPrep,
			Name:        "Hari Kerja (Persiapan)",
			Description: "Rabu, Jumat dengan persiapan pelayanan",
			Activities: []TemplateActivity{
				{JamMulai: "07:30", JamSelesai: "08:00", Kegiatan: "Persiapan pelayanan dan sterilisasi alat", Kode: KodePersiapan},
				{JamMulai: "08:00", JamSelesai: "12:30", Kegiatan: "Pelayanan poli umum", Kode: KodePoliUmum},
				{JamMulai: "12:30", JamSelesai: "14:00", Kegiatan: "Pemeriksaan poli khusus", Kode: KodePoliKhusus},
				{JamMulai: "14:00", JamSelesai: "15:00", Kegiatan: "Pencatatan dan pelaporan hasil Kegiatan", Kode: KodeAdmin},
			},
		},
		{
			ID:          TemplateSaturday,
			Name:        "Sabtu",
			Description: "Jadwal Sabtu (jam pendek)",
			Activities: []TemplateActivity{
				{JamMulai: "08:00", JamSelesai: "08:15", Kegiatan: "Persiapan pelayanan dan sterilisasi alat", Kode: KodePersiapan},
				{JamMulai: "08:15", JamSelesai: "10:30", Kegiatan: "Pelayanan poli umum", Kode: KodePoliUmum},
				{JamMulai: "10:30", JamSelesai: "11:30", Kegiatan: "Pemeriksaan poli khusus", Kode: KodePoliKhusus},
				{JamMulai: "11:30", JamSelesai: "12:00", Kegiatan: "Pencatatan dan pelaporan hasil Kegiatan", Kode: KodeAdmin},
			},
		},
	}
}
