package testutil

import (
	"strings"
	"sync"

	"lakd/internal/models"
	"lakd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockStoreService implements services.StoreServiceInterface on plain maps
// and records mutating calls.
type MockStoreService struct {
	mu        sync.Mutex
	Profile   models.Profile
	Templates []models.Template
	Records   map[string]*models.DayRecord
	Settings  map[string]string
	Device    string

	PutRecordCalls   []string
	ReplaceCalls     int
	RestoreCalls     int
	PutProfileCalls  int
	PutTemplateCalls int
}

func NewMockStoreService() *MockStoreService {
	return &MockStoreService{
		Records:  make(map[string]*models.DayRecord),
		Settings: make(map[string]string),
		Device:   "test-device",
	}
}

func (m *MockStoreService) GetProfile() models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Profile
}

func (m *MockStoreService) PutProfile(p models.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Profile = p
	m.PutProfileCalls++
}

func (m *MockStoreService) GetTemplates() []models.Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Template(nil), m.Templates...)
}

func (m *MockStoreService) PutTemplates(templates []models.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Templates = append([]models.Template(nil), templates...)
	m.PutTemplateCalls++
}

func (m *MockStoreService) TemplateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Templates)
}

func (m *MockStoreService) GetRecord(date string) (*models.DayRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.Records[date]
	return rec, ok
}

func (m *MockStoreService) PutRecord(date string, rec *models.DayRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[date] = rec
	m.PutRecordCalls = append(m.PutRecordCalls, date)
}

func (m *MockStoreService) DeleteRecord(date string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Records[date]
	delete(m.Records, date)
	return ok
}

func (m *MockStoreService) MonthRecords(year, month int) map[string]*models.DayRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := models.MonthPrefix(year, month)
	out := make(map[string]*models.DayRecord)
	for date, rec := range m.Records {
		if strings.HasPrefix(date, prefix) {
			out[date] = rec
		}
	}
	return out
}

func (m *MockStoreService) ReplaceRecords(records map[string]*models.DayRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = make(map[string]*models.DayRecord, len(records))
	for date, rec := range records {
		m.Records[date] = rec
	}
	m.ReplaceCalls++
}

func (m *MockStoreService) RecordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}

func (m *MockStoreService) GetSetting(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Settings[key]
	return val, ok
}

func (m *MockStoreService) PutSetting(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Settings[key] = value
}

func (m *MockStoreService) DeviceID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Device
}

func (m *MockStoreService) GetSnapshot() *models.Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make(map[string]*models.DayRecord, len(m.Records))
	for date, rec := range m.Records {
		records[date] = rec
	}
	return &models.Storage{
		Profile:    m.Profile,
		Templates:  append([]models.Template(nil), m.Templates...),
		Activities: records,
		Settings:   m.Settings,
		DeviceID:   m.Device,
	}
}

func (m *MockStoreService) Restore(s *models.Storage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RestoreCalls++
	if s == nil {
		return
	}
	m.Profile = s.Profile
	m.Templates = append([]models.Template(nil), s.Templates...)
	m.Records = s.Activities
	if m.Records == nil {
		m.Records = make(map[string]*models.DayRecord)
	}
	m.Settings = s.Settings
	if m.Settings == nil {
		m.Settings = make(map[string]string)
	}
	if s.DeviceID != "" {
		m.Device = s.DeviceID
	}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string][]byte
	ClearCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.ClearCalls++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
