package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lakd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "LAKD_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "LAKD_DATA_FILE")
	viper.BindEnv("persistence.saveInterval", "LAKD_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "LAKD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "LAKD_CACHE_SIZE")
	viper.BindEnv("sync.enabled", "LAKD_SYNC_ENABLED")
	viper.BindEnv("sync.baseUrl", "LAKD_SYNC_URL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Cache.TTL <= 0 {
		conf.Cache.TTL = 60 * time.Second
	}
	if conf.Sync.Timeout <= 0 {
		conf.Sync.Timeout = 30 * time.Second
	}

	conf.AppName = "LAKDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
