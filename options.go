package runnerdeck

import (
	"github.com/rs/zerolog"

	"github.com/runnerdeck/runnerdeck/internal/stores/memory"
	"github.com/runnerdeck/runnerdeck/pkg/catalogs"
	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// config holds the client configuration.
type config struct {
	catalog catalogs.Catalog
	store   runnertypes.Store
	audit   runnertypes.AuditSink
	logger  *zerolog.Logger
}

// Option is a function that configures a Runnerdeck instance.
type Option func(*config) error

// newConfig builds a config from defaults and options.
func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		catalog: catalogs.Builtin(),
		store:   memory.New(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithCatalog configures the catalog of runner type definitions. The
// builtin catalog is used by default.
func WithCatalog(catalog catalogs.Catalog) Option {
	return func(c *config) error {
		if catalog == nil {
			return &errors.ValidationError{Field: "catalog", Message: "cannot be nil"}
		}
		c.catalog = catalog
		return nil
	}
}

// WithCatalogDir configures the catalog from a directory of YAML definition
// files.
func WithCatalogDir(dir string) Option {
	return func(c *config) error {
		catalog, err := catalogs.NewFromDir(dir)
		if err != nil {
			return err
		}
		c.catalog = catalog
		return nil
	}
}

// WithStore configures the store that holds runner type records. An
// in-memory store is used by default.
func WithStore(store runnertypes.Store) Option {
	return func(c *config) error {
		if store == nil {
			return &errors.ValidationError{Field: "store", Message: "cannot be nil"}
		}
		c.store = store
		return nil
	}
}

// WithAuditSink configures the sink receiving registration audit events.
func WithAuditSink(sink runnertypes.AuditSink) Option {
	return func(c *config) error {
		if sink == nil {
			return &errors.ValidationError{Field: "audit sink", Message: "cannot be nil"}
		}
		c.audit = sink
		return nil
	}
}

// WithLogger configures the logger used during registration.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return &errors.ValidationError{Field: "logger", Message: "cannot be nil"}
		}
		c.logger = logger
		return nil
	}
}
