package models

// Storage is the in-memory state envelope: one field per logical key of
// the durable store.
type Storage struct {
	Profile    Profile               `json:"profile"`
	Templates  []Template            `json:"templates"`
	Activities map[string]*DayRecord `json:"activities"`
	Settings   map[string]string     `json:"settings"`
	DeviceID   string                `json:"deviceId"`
}
