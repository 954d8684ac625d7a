// Package runnerdeck maintains a declarative catalog of runner type
// definitions and reconciles it against a persistent store at startup.
//
// A runner type names an execution backend — local command, remote command,
// HTTP call, workflow engine — together with the parameters it accepts. The
// client wires a catalog and a store to the reconciler:
//
//	deck, err := runnerdeck.New()
//	if err != nil {
//		return err
//	}
//	result, err := deck.RegisterRunnerTypes(ctx)
package runnerdeck

import (
	"context"

	"github.com/runnerdeck/runnerdeck/pkg/catalogs"
	"github.com/runnerdeck/runnerdeck/pkg/logging"
	"github.com/runnerdeck/runnerdeck/pkg/reconciler"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Runnerdeck manages a runner type catalog and its registration against a
// store.
type Runnerdeck interface {
	// Catalog returns the configured catalog.
	Catalog() catalogs.Catalog

	// Store returns the configured store.
	Store() runnertypes.Store

	// RegisterRunnerTypes reconciles the catalog against the store. It is
	// invoked once during system startup; experimental definitions are
	// excluded unless reconciler.WithExperimental(true) is passed. The
	// returned result carries one outcome per definition — a non-nil
	// error only reports construction problems, never per-definition
	// failures.
	RegisterRunnerTypes(ctx context.Context, opts ...reconciler.Option) (*reconciler.Result, error)
}

// Compile-time interface check to ensure proper implementation.
var _ Runnerdeck = (*client)(nil)

// client is the internal implementation of the Runnerdeck interface.
type client struct {
	config *config
}

// New creates a new Runnerdeck instance with the given options. Without
// options it uses the builtin catalog and an in-memory store.
func New(opts ...Option) (Runnerdeck, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &client{config: cfg}, nil
}

// Catalog returns the configured catalog.
func (c *client) Catalog() catalogs.Catalog {
	return c.config.catalog
}

// Store returns the configured store.
func (c *client) Store() runnertypes.Store {
	return c.config.store
}

// RegisterRunnerTypes reconciles the catalog against the store.
func (c *client) RegisterRunnerTypes(ctx context.Context, opts ...reconciler.Option) (*reconciler.Result, error) {
	ctx = logging.WithOperation(ctx, "register_runner_types")

	var baseOpts []reconciler.Option
	if c.config.audit != nil {
		baseOpts = append(baseOpts, reconciler.WithAuditSink(c.config.audit))
	}
	if c.config.logger != nil {
		baseOpts = append(baseOpts, reconciler.WithLogger(c.config.logger))
	}
	baseOpts = append(baseOpts, opts...)

	r, err := reconciler.New(c.config.store, baseOpts...)
	if err != nil {
		return nil, err
	}

	return r.Reconcile(ctx, c.config.catalog), nil
}
