package config

import (
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	cfg := &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "UTC"),
		},
		API: API{
			BaseURL:                 utils.GetEnvString("API_BASE_URL", "http://localhost:3001"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Session: Session{
			StorageDriver: utils.GetEnvString("SESSION_STORAGE_DRIVER", constvars.SessionStorageDriverFile),
			FilePath:      utils.GetEnvString("SESSION_FILE_PATH", ".vitalsync/session.json"),
			TTLInDays:     utils.GetEnvInt("SESSION_TTL_IN_DAYS", constvars.SessionMaxAgeInDays),
		},
		Sync: Sync{
			PollIntervalInSeconds:      utils.GetEnvInt("SYNC_POLL_INTERVAL_IN_SECONDS", 30),
			ManualRefreshesPerMinute:   utils.GetEnvInt("SYNC_MANUAL_REFRESHES_PER_MINUTE", 30),
			ManualRefreshBurst:         utils.GetEnvInt("SYNC_MANUAL_REFRESH_BURST", 3),
			InitialFetchTimeoutSeconds: utils.GetEnvInt("SYNC_INITIAL_FETCH_TIMEOUT_IN_SECONDS", 15),
		},
	}

	// The session mirror's expiry ceiling is fixed at 7 days.
	if cfg.Session.TTLInDays > constvars.SessionMaxAgeInDays || cfg.Session.TTLInDays <= 0 {
		cfg.Session.TTLInDays = constvars.SessionMaxAgeInDays
	}
	return cfg
}
