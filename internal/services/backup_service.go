package services

import (
	"time"

	"lakd/internal/models"
)

type BackupServiceInterface interface {
	Export() *models.BackupPayload
	Import(payload *models.BackupPayload) int
}

// BackupService builds and applies the backup exchange document.
type BackupService struct {
	store StoreServiceInterface
}

func NewBackupService(store StoreServiceInterface) BackupServiceInterface {
	return &BackupService{store: store}
}

func (bs *BackupService) Export() *models.BackupPayload {
	snapshot := bs.store.GetSnapshot()
	profile := snapshot.Profile
	return &models.BackupPayload{
		Profile:    &profile,
		Templates:  snapshot.Templates,
		Activities: snapshot.Activities,
		ExportDate: time.Now().Format(time.RFC3339),
	}
}

// Import applies each top-level key independently when present and
// returns the number of keys applied. Absent keys leave local state
// untouched.
func (bs *BackupService) Import(payload *models.BackupPayload) int {
	if payload == nil {
		return 0
	}
	applied := 0
	if payload.Profile != nil {
		bs.store.PutProfile(*payload.Profile)
		applied++
	}
	if payload.Templates != nil {
		bs.store.PutTemplates(payload.Templates)
		applied++
	}
	if payload.Activities != nil {
		bs.store.ReplaceRecords(payload.Activities)
		applied++
	}
	return applied
}
