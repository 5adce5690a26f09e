package models

// MonthStats is the derived aggregate over one month of records.
// It is computed on demand and never persisted.
type MonthStats struct {
	TotalDays       int `json:"totalDays"`
	TotalMinutes    int `json:"totalMinutes"`
	TotalActivities int `json:"totalActivities"`
	TotalPatients   int `json:"totalPatients"`
	PatientUmum     int `json:"patientUmum"`
	PatientRujukan  int `json:"patientRujukan"`
	PatientKhusus   int `json:"patientKhusus"`
}
