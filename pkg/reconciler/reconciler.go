// Package reconciler brings the store's runner type records into agreement
// with a catalog of definitions. For each definition, in catalog order, it
// performs a lookup-validate-upsert pass: experimental definitions are
// filtered by an inclusion flag, stored identity is preserved across
// re-registration, and every failure is isolated to its own definition so
// one bad definition never aborts the run.
package reconciler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/runnerdeck/runnerdeck/pkg/catalogs"
	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/logging"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Reconciler is the main interface for reconciling a catalog against a store.
type Reconciler interface {
	// Reconcile runs one pass over the catalog. It always completes and
	// returns one outcome per definition in catalog order; failures are
	// reported through the outcome sequence, never as a panic or an
	// aborted pass.
	Reconcile(ctx context.Context, catalog catalogs.Catalog) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	store               runnertypes.Store
	audit               runnertypes.AuditSink
	includeExperimental bool
	logger              *zerolog.Logger
}

// New creates a new Reconciler backed by the given store.
func New(store runnertypes.Store, opts ...Option) (Reconciler, error) {
	if store == nil {
		return nil, &errors.ValidationError{
			Field:   "store",
			Message: "cannot be nil",
		}
	}

	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		store:               store,
		audit:               options.audit,
		includeExperimental: options.includeExperimental,
		logger:              options.logger,
	}, nil
}

// Reconcile runs one reconciliation pass over the catalog.
func (r *reconciler) Reconcile(ctx context.Context, catalog catalogs.Catalog) *Result {
	logger := r.log(ctx)
	// Downstream stores and sinks resolve their logger from the context,
	// so the pass logger must travel with it.
	ctx = logging.WithLogger(ctx, logger)
	result := NewResult()

	definitions := catalog.Definitions()
	logger.Debug().
		Int("definitions", len(definitions)).
		Bool("include_experimental", r.includeExperimental).
		Msg("Starting runner type registration")

	for _, def := range definitions {
		outcome := r.reconcileDefinition(ctx, def)
		result.Outcomes = append(result.Outcomes, outcome)

		switch outcome.Op {
		case OpSkipped:
			logger.Debug().
				Str("runner_type", outcome.Name).
				Msg("Skipping experimental runner type")
		case OpFailed:
			// Log and continue: one bad definition must not block the rest.
			logger.Error().
				Err(outcome.Err).
				Str("runner_type", outcome.Name).
				Msg("Unable to register runner type")
		default:
			logger.Info().
				Str("runner_type", outcome.Name).
				Str("operation", outcome.Op.String()).
				Msg("Runner type registered")
		}
	}

	result.Finalize()
	logger.Debug().
		Int("created", result.Created()).
		Int("updated", result.Updated()).
		Int("skipped", result.Skipped()).
		Int("failed", result.Failed()).
		Dur("duration", result.Metadata.Duration).
		Msg("Finished runner type registration")

	return result
}

// reconcileDefinition performs the filter-lookup-validate-upsert pass for a
// single definition and converts every failure into an outcome.
func (r *reconciler) reconcileDefinition(ctx context.Context, def runnertypes.Definition) Outcome {
	if def.Experimental && !r.includeExperimental {
		return Outcome{Name: def.Name, Op: OpSkipped}
	}

	ctx = logging.WithRunnerType(ctx, def.Name)

	// The experimental marker is a selection flag, not a persisted field.
	// Strip it on a copy so the catalog itself stays untouched.
	def = def.WithoutExperimental()

	existing, err := r.store.FindByName(ctx, def.Name)
	if err != nil && !errors.IsNotFound(err) {
		return Outcome{Name: def.Name, Op: OpFailed, Err: err}
	}
	// A store returning (nil, nil) breaks the FindByName contract; treat
	// the record as absent rather than panic mid-pass.
	isUpdate := err == nil && existing != nil

	if err := def.Validate(); err != nil {
		return Outcome{Name: def.Name, Op: OpFailed, Err: err}
	}

	record := runnertypes.NewRecord(def)
	if isUpdate {
		// Identity must never change across an update.
		record.ID = existing.ID
	}

	stored, err := r.store.Upsert(ctx, record)
	if err != nil {
		return Outcome{Name: def.Name, Op: OpFailed, Err: err}
	}

	op := OpCreated
	if isUpdate {
		op = OpUpdated
	}

	if r.audit != nil {
		r.audit.Record(ctx, runnertypes.AuditEvent{
			Name:      stored.Name,
			Operation: op.String(),
			Record:    stored,
			Timestamp: time.Now(),
		})
	}

	return Outcome{Name: def.Name, Op: op, Record: stored}
}

// log resolves the logger for a pass: the configured logger wins, otherwise
// the context logger is used.
func (r *reconciler) log(ctx context.Context) *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.FromContext(ctx)
}
