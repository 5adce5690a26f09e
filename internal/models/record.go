package models

// DayType classifies a daily record. Exactly one type is active per record;
// setting one clears the state belonging to the others.
type DayType string

const (
	DayTypeNormal    DayType = "normal"
	DayTypeMeeting   DayType = "meeting"
	DayTypeSickLeave DayType = "sick-leave"
	DayTypeHoliday   DayType = "national-holiday"
)

// Keterangan codes used in the KET column of the bureaucratic form.
const (
	KeteranganTugas = "TJ" // tugas jabatan
	KeteranganSakit = "IS" // izin sakit
	KeteranganLibur = "LN" // libur nasional
)

type ActivityEntry struct {
	JamMulai   string `json:"jamMulai"`
	JamSelesai string `json:"jamSelesai"`
	Kegiatan   string `json:"kegiatan"`
	Kode       string `json:"kode"`
	Volume     string `json:"volume"`
	Menit      int    `json:"menit"`
}

// DayRecord is the full activity record for one calendar day, keyed by its
// ISO date. A save always replaces the whole record.
type DayRecord struct {
	Tanggal       string          `json:"tanggal"`
	Hari          string          `json:"hari"`
	Activities    []ActivityEntry `json:"activities"`
	TotalMenit    int             `json:"totalMenit"`
	PasienUmum    int             `json:"pasienUmum"`
	PasienRujukan int             `json:"pasienRujukan"`
	PasienKhusus  int             `json:"pasienKhusus"`
	Keterangan    string          `json:"keterangan"`
	DayType       DayType         `json:"dayType"`
	MeetingName   string          `json:"meetingName,omitempty"`
	SickLeaveNote string          `json:"sickLeaveNote,omitempty"`
	HolidayName   string          `json:"holidayName,omitempty"`
}

// SetDayType activates a day type and clears everything belonging to the
// other special modes. Sick leave and national holiday zero the patient
// counts: no patients are seen on a day without service.
func (r *DayRecord) SetDayType(t DayType) {
	r.DayType = t
	if t != DayTypeMeeting {
		r.MeetingName = ""
	}
	if t != DayTypeSickLeave {
		r.SickLeaveNote = ""
	}
	if t != DayTypeHoliday {
		r.HolidayName = ""
	}

	switch t {
	case DayTypeSickLeave:
		r.Keterangan = KeteranganSakit
	case DayTypeHoliday:
		r.Keterangan = KeteranganLibur
	default:
		r.Keterangan = KeteranganTugas
	}

	if t == DayTypeSickLeave || t == DayTypeHoliday {
		r.PasienUmum = 0
		r.PasienRujukan = 0
		r.PasienKhusus = 0
	}
}

// DayTypeForKeterangan maps a KET column code back to a day type.
func DayTypeForKeterangan(ket string) DayType {
	switch ket {
	case KeteranganSakit:
		return DayTypeSickLeave
	case KeteranganLibur:
		return DayTypeHoliday
	default:
		return DayTypeNormal
	}
}

func (r *DayRecord) TotalPatients() int {
	return r.PasienUmum + r.PasienRujukan + r.PasienKhusus
}

// RecomputeTotal refreshes TotalMenit from the entry durations.
func (r *DayRecord) RecomputeTotal() {
	total := 0
	for _, act := range r.Activities {
		total += act.Menit
	}
	r.TotalMenit = total
}
