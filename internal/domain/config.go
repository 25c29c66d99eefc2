package domain

// Config mirrors ~/.roulette/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Storage             StorageSettings   `yaml:"storage"`
	Predictor           PredictorSettings `yaml:"predictor"`
	Server              ServerSettings    `yaml:"server"`
	Logging             LoggingSettings   `yaml:"logging"`
}

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// StorageSettings selects and configures the key-value backend.
type StorageSettings struct {
	Backend  string           `yaml:"backend"`
	Path     string           `yaml:"path"`
	Redis    RedisSettings    `yaml:"redis"`
	Postgres PostgresSettings `yaml:"postgres"`
}

// RedisSettings configures the redis backend.
type RedisSettings struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// PostgresSettings configures the postgres backend.
type PostgresSettings struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// PredictorSettings tunes the outer prediction loop, never the heuristic.
type PredictorSettings struct {
	Seed          int64  `yaml:"seed"`
	WatchInterval string `yaml:"watch_interval"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingSettings configures the logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
