package models

// Profile is the singleton employee identity printed on every report.
type Profile struct {
	Nama    string `json:"nama"`
	Nip     string `json:"nip"`
	Pangkat string `json:"pangkat"`
	Unit    string `json:"unit"`
}

func (p Profile) Empty() bool {
	return p.Nama == "" && p.Nip == "" && p.Pangkat == "" && p.Unit == ""
}
