package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/roulette-go/assets"
	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/pkg/filesystem"
	"github.com/doeshing/roulette-go/internal/ports"
)

// Environment overrides, applied after the YAML file.
const (
	EnvConfigPath    = "ROULETTE_CONFIG"
	EnvBackend       = "ROULETTE_BACKEND"
	EnvStoragePath   = "ROULETTE_STORAGE_PATH"
	EnvRedisAddr     = "ROULETTE_REDIS_ADDR"
	EnvRedisPassword = "ROULETTE_REDIS_PASSWORD"
	EnvRedisDB       = "ROULETTE_REDIS_DB"
	EnvPostgresDSN   = "ROULETTE_POSTGRES_DSN"
	EnvSeed          = "ROULETTE_SEED"
	EnvServerAddr    = "ROULETTE_ADDR"
	EnvLogLevel      = "ROULETTE_LOG_LEVEL"
)

// FileLoader loads YAML configuration from ~/.roulette/config.yaml (overridable via ROULETTE_CONFIG).
type FileLoader struct {
	overridePath string
	envFile      string
}

// NewFileLoader builds a new loader. An empty path uses the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, envFile: ".env"}
}

// WithEnvFile changes the dotenv file read before overrides; empty disables it.
func (l *FileLoader) WithEnvFile(path string) *FileLoader {
	l.envFile = path
	return l
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	if l.envFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
	}

	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeDefault(path); err != nil {
				return domain.Config{}, err
			}
			return applyEnv(cfg)
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return applyEnv(hydrateDefaults(cfg))
}

// Save writes cfg to the resolved path.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeDefault(path string) error {
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return hydrateDefaults(domain.Config{})
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = domain.BackendSQLite
	}
	if cfg.Predictor.WatchInterval == "" {
		cfg.Predictor.WatchInterval = "5s"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	return cfg
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	if v := os.Getenv(EnvBackend); v != "" {
		if err := cfg.SetBackend(v); err != nil {
			return domain.Config{}, err
		}
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Storage.Redis.Addr = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		cfg.Storage.Redis.Password = v
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return domain.Config{}, errors.New(EnvRedisDB + " must be an integer")
		}
		cfg.Storage.Redis.DB = db
	}
	if v := os.Getenv(EnvPostgresDSN); v != "" {
		cfg.Storage.Postgres.DSN = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return domain.Config{}, errors.New(EnvSeed + " must be an integer")
		}
		cfg.Predictor.Seed = seed
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return cfg, nil
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
