package models

// BackupPayload is the exchange document for file backups and cloud sync.
// On import each top-level key is applied independently when present.
type BackupPayload struct {
	Profile    *Profile              `json:"profile,omitempty"`
	Templates  []Template            `json:"templates,omitempty"`
	Activities map[string]*DayRecord `json:"activities,omitempty"`
	ExportDate string                `json:"exportDate"`
}

// SyncDocument is the remote copy of a backup, keyed by device id on the
// server. LastSync is stamped by the remote on write.
type SyncDocument struct {
	AppData  *BackupPayload `json:"appData"`
	LastSync string         `json:"lastSync,omitempty"`
}
