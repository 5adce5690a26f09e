package services

import (
	"sync"

	"github.com/google/uuid"

	"lakd/internal/models"
)

// StoreServiceInterface is the single-process owner of all persisted state:
// profile, template catalog, date-keyed records and free-form settings.
type StoreServiceInterface interface {
	GetProfile() models.Profile
	PutProfile(p models.Profile)

	GetTemplates() []models.Template
	PutTemplates(templates []models.Template)
	TemplateCount() int

	GetRecord(date string) (*models.DayRecord, bool)
	PutRecord(date string, rec *models.DayRecord)
	DeleteRecord(date string) bool
	MonthRecords(year, month int) map[string]*models.DayRecord
	ReplaceRecords(records map[string]*models.DayRecord)
	RecordCount() int

	GetSetting(key string) (string, bool)
	PutSetting(key, value string)

	DeviceID() string

	GetSnapshot() *models.Storage
	Restore(s *models.Storage)
}

type StoreService struct {
	mu        sync.RWMutex
	profile   models.Profile
	templates []models.Template
	settings  map[string]string
	deviceID  string
	records   *models.RecordStore
}

func NewStoreService() StoreServiceInterface {
	return &StoreService{
		settings: make(map[string]string),
		records:  models.NewRecordStore(),
	}
}

func (ss *StoreService) GetProfile() models.Profile {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.profile
}

func (ss *StoreService) PutProfile(p models.Profile) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.profile = p
}

func (ss *StoreService) GetTemplates() []models.Template {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return append([]models.Template(nil), ss.templates...)
}

func (ss *StoreService) PutTemplates(templates []models.Template) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.templates = append([]models.Template(nil), templates...)
}

func (ss *StoreService) TemplateCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.templates)
}

func (ss *StoreService) GetRecord(date string) (*models.DayRecord, bool) {
	return ss.records.Get(date)
}

func (ss *StoreService) PutRecord(date string, rec *models.DayRecord) {
	ss.records.Set(date, rec)
}

func (ss *StoreService) DeleteRecord(date string) bool {
	return ss.records.Delete(date)
}

func (ss *StoreService) MonthRecords(year, month int) map[string]*models.DayRecord {
	return ss.records.Month(year, month)
}

func (ss *StoreService) ReplaceRecords(records map[string]*models.DayRecord) {
	if records == nil {
		records = make(map[string]*models.DayRecord)
	}
	ss.records.PutData(records)
}

func (ss *StoreService) RecordCount() int {
	return ss.records.Len()
}

func (ss *StoreService) GetSetting(key string) (string, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	val, ok := ss.settings[key]
	return val, ok
}

func (ss *StoreService) PutSetting(key, value string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.settings[key] = value
}

// DeviceID returns the anonymous identity of this installation, minting
// one on first use.
func (ss *StoreService) DeviceID() string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.deviceID == "" {
		ss.deviceID = uuid.NewString()
	}
	return ss.deviceID
}

func (ss *StoreService) GetSnapshot() *models.Storage {
	ss.mu.RLock()
	profile := ss.profile
	templates := append([]models.Template(nil), ss.templates...)
	settings := make(map[string]string, len(ss.settings))
	for k, v := range ss.settings {
		settings[k] = v
	}
	deviceID := ss.deviceID
	ss.mu.RUnlock()

	return &models.Storage{
		Profile:    profile,
		Templates:  templates,
		Activities: ss.records.GetData(),
		Settings:   settings,
		DeviceID:   deviceID,
	}
}

func (ss *StoreService) Restore(s *models.Storage) {
	if s == nil {
		return
	}
	ss.mu.Lock()
	ss.profile = s.Profile
	ss.templates = append([]models.Template(nil), s.Templates...)
	ss.settings = s.Settings
	if ss.settings == nil {
		ss.settings = make(map[string]string)
	}
	if s.DeviceID != "" {
		ss.deviceID = s.DeviceID
	}
	ss.mu.Unlock()

	activities := s.Activities
	if activities == nil {
		activities = make(map[string]*models.DayRecord)
	}
	ss.records.PutData(activities)
}
