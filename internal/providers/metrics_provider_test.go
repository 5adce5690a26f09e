package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"lakd/internal/models"
	"lakd/internal/structures"
)

// --- minimal mock for StoreServiceInterface ---

type metricsTestStore struct{}

func (m *metricsTestStore) GetProfile() models.Profile                          { return models.Profile{} }
func (m *metricsTestStore) PutProfile(_ models.Profile)                         {}
func (m *metricsTestStore) GetTemplates() []models.Template                     { return nil }
func (m *metricsTestStore) PutTemplates(_ []models.Template)                    {}
func (m *metricsTestStore) TemplateCount() int                                  { return 3 }
func (m *metricsTestStore) GetRecord(_ string) (*models.DayRecord, bool)        { return nil, false }
func (m *metricsTestStore) PutRecord(_ string, _ *models.DayRecord)             {}
func (m *metricsTestStore) DeleteRecord(_ string) bool                          { return false }
func (m *metricsTestStore) MonthRecords(_, _ int) map[string]*models.DayRecord  { return nil }
func (m *metricsTestStore) ReplaceRecords(_ map[string]*models.DayRecord)       {}
func (m *metricsTestStore) RecordCount() int                                    { return 7 }
func (m *metricsTestStore) GetSetting(_ string) (string, bool)                  { return "", false }
func (m *metricsTestStore) PutSetting(_, _ string)                              {}
func (m *metricsTestStore) DeviceID() string                                    { return "test" }
func (m *metricsTestStore) GetSnapshot() *models.Storage                        { return &models.Storage{} }
func (m *metricsTestStore) Restore(_ *models.Storage)                           {}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncImportedDays(10)
	m.IncSyncOps("push", true)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})

	// These should not panic
	m.IncRequestsTotal("/day", 200)
	m.IncRequestsTotal("/day", 404)
	m.ObserveRequestDuration("/day", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(100 * time.Millisecond)
	m.IncImportedDays(30)
	m.IncSyncOps("pull", false)
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
