package config

import (
	"time"

	"journeymap/utils"
)

// Storage backend names. The remote backend is selected by configuration
// presence: a MONGO_URI implies mongo unless STORAGE_BACKEND overrides it.
const (
	BackendLocal = "local"
	BackendMongo = "mongo"
)

type AppConfig struct {
	Port            string
	StorageBackend  string
	DataFile        string // local store blob path
	RedisURL        string // optional geocode lookup cache
	NominatimURL    string
	GeocodeCacheTTL time.Duration
	MapTilerKey     string // optional alternate map tile style
	Database        DatabaseConfig
}

func Load() AppConfig {
	db := LoadDatabaseConfig()

	backend := utils.GetEnvAsString("STORAGE_BACKEND", "")
	if backend == "" {
		if db.URI != "" {
			backend = BackendMongo
		} else {
			backend = BackendLocal
		}
	}

	return AppConfig{
		Port:            utils.GetEnvAsString("PORT", "8080"),
		StorageBackend:  backend,
		DataFile:        utils.GetEnvAsString("DATA_FILE", "journey_map_data.json"),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
		NominatimURL:    utils.GetEnvAsString("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocodeCacheTTL: utils.GetEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		MapTilerKey:     utils.GetEnvAsString("MAPTILER_KEY", ""),
		Database:        db,
	}
}
