package persistence

import (
	"os"

	json "github.com/goccy/go-json"

	"lakd/internal/models"
	"lakd/internal/persistence/interfaces"
	"lakd/internal/providers"
	"lakd/internal/services"
)

// FileManager writes the store snapshot as a zstd-compressed, versioned
// JSON envelope. Writes go through a temp file and rename so a crash
// never leaves a torn data file.
type FileManager struct {
	store      services.StoreServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store services.StoreServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.store.GetSnapshot()
	envelope := models.StorageV2{
		Version:    models.StorageVersion,
		Profile:    snapshot.Profile,
		Templates:  snapshot.Templates,
		Activities: snapshot.Activities,
		Settings:   snapshot.Settings,
		DeviceID:   snapshot.DeviceID,
	}

	jsonData, err := json.Marshal(&envelope)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Current format: versioned envelope.
	var envelope models.StorageV2
	if err := json.Unmarshal(decompressedData, &envelope); err == nil && envelope.Version >= models.StorageVersion {
		f.store.Restore(&models.Storage{
			Profile:    envelope.Profile,
			Templates:  envelope.Templates,
			Activities: envelope.Activities,
			Settings:   envelope.Settings,
			DeviceID:   envelope.DeviceID,
		})
		return nil
	}

	// Legacy format: bare date→record map.
	f.logger.Warnf(providers.TypeApp, "Inconsistent data file found, try to migrate from old data format")
	var activities map[string]*models.DayRecord
	if err := json.Unmarshal(decompressedData, &activities); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	f.logger.Warnf(providers.TypeApp, "Migration from legacy format successful")
	f.store.Restore(&models.Storage{Activities: activities})
	return nil
}
