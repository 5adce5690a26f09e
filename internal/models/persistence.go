package models

// StorageV2 is the versioned on-disk envelope. V1 files held the bare
// activities map only; such files unmarshal with Version zero and are
// migrated on load.
type StorageV2 struct {
	Version    int                   `json:"version"`
	Profile    Profile               `json:"profile"`
	Templates  []Template            `json:"templates"`
	Activities map[string]*DayRecord `json:"activities"`
	Settings   map[string]string     `json:"settings"`
	DeviceID   string                `json:"deviceId"`
}

const StorageVersion = 2
