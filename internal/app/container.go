package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	appconfig "github.com/doeshing/roulette-go/internal/application/config"
	"github.com/doeshing/roulette-go/internal/application/doctor"
	"github.com/doeshing/roulette-go/internal/application/history"
	"github.com/doeshing/roulette-go/internal/application/prediction"
	"github.com/doeshing/roulette-go/internal/application/predictor"
	"github.com/doeshing/roulette-go/internal/application/settings"
	"github.com/doeshing/roulette-go/internal/application/strategy"
	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/infrastructure/config"
	"github.com/doeshing/roulette-go/internal/infrastructure/kv"
	"github.com/doeshing/roulette-go/internal/infrastructure/storage"
	"github.com/doeshing/roulette-go/internal/pkg/logger"
	"github.com/doeshing/roulette-go/internal/pkg/random"
	"github.com/doeshing/roulette-go/internal/ports"
)

// Options controls how the container is assembled.
type Options struct {
	Verbose    bool
	Ephemeral  bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Store          ports.KeyValueStore
	Storage        *storage.Storage
	History        *history.Store
	Engine         *prediction.Engine
	Settings       *settings.Service
	Strategies     *strategy.Service
	Predictor      *predictor.Service
	DoctorService  *doctor.Service
	Logger         ports.Logger
}

// BuildContainer loads and validates the configuration, then opens the
// selected backend and wires every service.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader, cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgLoader.Path(), err)
	}

	log := newLogger(opts, cfg)
	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := BuildContainerWith(cfg, store, log, random.New(cfg.Predictor.Seed), time.Now)
	c.ConfigProvider = cfgLoader
	c.ConfigLoader = cfgLoader
	c.DoctorService.ConfigProvider = cfgLoader
	return c, nil
}

// BuildDiagnosticContainer wires only the config loader and the doctor.
// An invalid configuration or a backend that fails to open is left for the
// doctor to report.
func BuildDiagnosticContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader, cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	log := newLogger(opts, cfg)

	c := &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		DoctorService:  &doctor.Service{ConfigProvider: cfgLoader},
		Logger:         log,
	}
	if err := appconfig.Validate(cfg); err != nil {
		c.DoctorService.StoreErr = errors.New("not opened, configuration invalid")
		return c, nil
	}
	store, err := kv.Open(ctx, cfg)
	if err != nil {
		log.Warn("storage backend unavailable", map[string]interface{}{"error": err.Error()})
		c.DoctorService.StoreErr = err
		return c, nil
	}
	c.Store = store
	c.DoctorService.Store = store
	return c, nil
}

func loadConfig(ctx context.Context, opts Options) (*config.FileLoader, domain.Config, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, domain.Config{}, err
	}
	if opts.Ephemeral {
		if err := cfg.SetBackend(domain.BackendMemory); err != nil {
			return nil, domain.Config{}, err
		}
	}
	return cfgLoader, cfg, nil
}

func newLogger(opts Options, cfg domain.Config) ports.Logger {
	return logger.New(logger.Options{
		Verbose: opts.Verbose,
		Level:   cfg.Logging.Level,
		JSON:    cfg.Logging.JSON,
	})
}

// BuildContainerWith assembles the services around an already opened store.
// The persisted history is loaded, or seeded when absent.
func BuildContainerWith(cfg domain.Config, store ports.KeyValueStore, log ports.Logger, rnd ports.Random, clock ports.Clock) *Container {
	persist := storage.New(store, log)

	historyStore := history.NewStore(persist, clock, log)
	historyStore.LoadOrSeed()

	engine := prediction.NewEngine(historyStore, persist, rnd, clock, log)
	settingsService := settings.NewService(persist)
	strategyService := strategy.NewService(persist, log)

	predictorService := &predictor.Service{
		History:    historyStore,
		Engine:     engine,
		Settings:   settingsService,
		Strategies: strategyService,
		Storage:    persist,
		Random:     rnd,
		Logger:     log,
	}

	provider := staticConfig(cfg)
	return &Container{
		Config:         cfg,
		ConfigProvider: provider,
		Store:          store,
		Storage:        persist,
		History:        historyStore,
		Engine:         engine,
		Settings:       settingsService,
		Strategies:     strategyService,
		Predictor:      predictorService,
		DoctorService:  &doctor.Service{ConfigProvider: provider, Store: store},
		Logger:         log,
	}
}

// Close releases the backend.
func (c *Container) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

type staticConfig domain.Config

func (s staticConfig) Load(context.Context) (domain.Config, error) {
	return domain.Config(s), nil
}
