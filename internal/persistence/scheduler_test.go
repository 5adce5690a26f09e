package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakd/internal/models"
	"lakd/internal/persistence/interfaces"
	"lakd/internal/providers"
	"lakd/internal/structures"
	"lakd/internal/testutil"
)

func newScheduler(t *testing.T, store *testutil.MockStoreService, filePath string) interfaces.SchedulerInterface {
	t.Helper()

	conf := &structures.Config{}
	conf.Persistence.FilePath = filePath
	conf.Persistence.SaveInterval = time.Hour

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	fm := NewFileManager(compressor, store, &testutil.MockLogger{})
	t.Cleanup(fm.Close)

	metrics := providers.NewMetricsProvider(conf, store)
	return NewScheduler(conf, &testutil.MockLogger{}, metrics, fm)
}

func TestScheduler_PersistRestoreRoundTrip(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "data.bin")

	source := testutil.NewMockStoreService()
	source.PutRecord("2025-06-02", &models.DayRecord{Tanggal: "2025-06-02", TotalMenit: 450})
	require.NoError(t, newScheduler(t, source, filePath).Persist())

	target := testutil.NewMockStoreService()
	require.NoError(t, newScheduler(t, target, filePath).Restore())

	rec, ok := target.GetRecord("2025-06-02")
	require.True(t, ok)
	assert.Equal(t, 450, rec.TotalMenit)
}

func TestScheduler_RestoreMissingFile(t *testing.T) {
	scheduler := newScheduler(t, testutil.NewMockStoreService(), filepath.Join(t.TempDir(), "nope.bin"))
	assert.NoError(t, scheduler.Restore())
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	scheduler := newScheduler(t, testutil.NewMockStoreService(), filepath.Join(t.TempDir(), "data.bin"))
	assert.NotPanics(t, scheduler.Stop)
}

func TestScheduler_InitStartsAndStops(t *testing.T) {
	scheduler := newScheduler(t, testutil.NewMockStoreService(), filepath.Join(t.TempDir(), "data.bin"))
	scheduler.Init()
	scheduler.Stop()
}
