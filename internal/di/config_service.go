package di

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/do/v2"

	"github.com/omarluq/dsgen/internal/config"
)

// ConfigService holds the loaded configuration with hot-reload support.
type ConfigService struct {
	runtime *config.Runtime
	watcher *config.Watcher
	path    string
	mu      sync.Mutex
}

// NewConfig loads and validates the configuration from the config path.
// An empty path yields the built-in defaults.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ConfigService{
		runtime: config.NewRuntime(cfg),
		path:    path,
	}, nil
}

// Get returns the current configuration.
func (c *ConfigService) Get() *config.Config {
	return c.runtime.Get()
}

// Path returns the config file path, empty when running on defaults.
func (c *ConfigService) Path() string {
	return c.path
}

// Watch reloads the configuration whenever the config file changes and calls
// onReload with each new config. It blocks until ctx is canceled.
func (c *ConfigService) Watch(ctx context.Context, logger zerolog.Logger, onReload config.ReloadCallback) error {
	if c.path == "" {
		return errors.New("watching requires a config file")
	}

	watcher, err := config.NewWatcher(c.path, config.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.path, err)
	}
	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()

	watcher.OnReload(func(cfg *config.Config) error {
		c.runtime.Store(cfg)
		return onReload(cfg)
	})

	logger.Info().Str("path", watcher.Path()).Msg("config file watcher started")
	return watcher.Watch(ctx)
}

// Shutdown implements do.Shutdowner for watcher cleanup.
func (c *ConfigService) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
