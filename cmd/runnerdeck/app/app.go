// Package app provides the application context and dependency management
// for the runnerdeck CLI. It centralizes configuration, logging, and store
// wiring following the dependency injection pattern.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/runnerdeck/runnerdeck/internal/stores/memory"
	"github.com/runnerdeck/runnerdeck/internal/stores/postgres"
	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// App represents the runnerdeck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Store opens the configured runner type store: Postgres when a DSN is
// configured, in-memory otherwise. The returned closer releases the store's
// resources and is safe to call on the in-memory store too.
func (a *App) Store(ctx context.Context) (runnertypes.Store, func(), error) {
	if a.config.StoreDSN == "" {
		return memory.New(), func() {}, nil
	}

	store, err := postgres.Open(ctx, a.config.StoreDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, store.Close, nil
}
