package persistence

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakd/internal/models"
	"lakd/internal/testutil"
)

func newFileManager(t *testing.T, store *testutil.MockStoreService) (*FileManager, *testutil.MockLogger) {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	logger := &testutil.MockLogger{}
	fm := NewFileManager(compressor, store, logger)
	t.Cleanup(fm.Close)
	return fm, logger
}

func TestFileManager_SaveLoadRoundTrip(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "data.bin")

	source := testutil.NewMockStoreService()
	source.PutProfile(models.Profile{Nama: "drg. Rina", Nip: "197001012000012001"})
	source.PutTemplates(models.DefaultTemplates())
	source.PutRecord("2025-06-02", &models.DayRecord{Tanggal: "2025-06-02", TotalMenit: 450})
	source.PutSetting("theme", "dark")

	fm, _ := newFileManager(t, source)
	require.NoError(t, fm.SaveToFile(fileName))

	target := testutil.NewMockStoreService()
	fm2, _ := newFileManager(t, target)
	require.NoError(t, fm2.LoadFromFile(fileName))

	assert.Equal(t, 1, target.RestoreCalls)
	assert.Equal(t, "drg. Rina", target.GetProfile().Nama)
	assert.Equal(t, 3, target.TemplateCount())
	assert.Equal(t, "test-device", target.DeviceID())
	rec, ok := target.GetRecord("2025-06-02")
	require.True(t, ok)
	assert.Equal(t, 450, rec.TotalMenit)
	theme, _ := target.GetSetting("theme")
	assert.Equal(t, "dark", theme)
}

func TestFileManager_LoadMissingFile(t *testing.T) {
	store := testutil.NewMockStoreService()
	fm, _ := newFileManager(t, store)

	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "nope.bin")))
	assert.Equal(t, 0, store.RestoreCalls)
}

func TestFileManager_MigratesLegacyFormat(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "data.bin")

	// V1 files held the bare date-keyed record map.
	legacy := map[string]*models.DayRecord{
		"2025-06-02": {Tanggal: "2025-06-02", TotalMenit: 450},
		"2025-06-03": {Tanggal: "2025-06-03", DayType: models.DayTypeSickLeave},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fileName, raw, 0o644))

	store := testutil.NewMockStoreService()
	logger := &testutil.MockLogger{}
	fm := NewFileManager(&testutil.MockCompressor{}, store, logger)
	require.NoError(t, fm.LoadFromFile(fileName))

	assert.Equal(t, 2, store.RecordCount())
	rec, ok := store.GetRecord("2025-06-02")
	require.True(t, ok)
	assert.Equal(t, 450, rec.TotalMenit)

	require.Len(t, logger.Logs, 2)
	assert.Contains(t, logger.Logs[0].Format, "Inconsistent data file")
	assert.Contains(t, logger.Logs[1].Format, "successful")
}

func TestFileManager_CorruptFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(fileName, []byte("not a zstd frame"), 0o644))

	store := testutil.NewMockStoreService()
	fm, _ := newFileManager(t, store)

	assert.Error(t, fm.LoadFromFile(fileName))
	assert.Equal(t, 0, store.RestoreCalls)
}

func TestFileManager_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "data.bin")

	fm, _ := newFileManager(t, testutil.NewMockStoreService())
	require.NoError(t, fm.SaveToFile(fileName))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.bin", entries[0].Name())
}
