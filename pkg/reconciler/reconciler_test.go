package reconciler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerdeck/runnerdeck/internal/stores/memory"
	"github.com/runnerdeck/runnerdeck/pkg/catalogs"
	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/logging"
	"github.com/runnerdeck/runnerdeck/pkg/reconciler"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// faultyStore wraps a real store and injects failures per runner type name.
type faultyStore struct {
	inner      runnertypes.Store
	failLookup map[string]error
	failUpsert map[string]error
}

func (f *faultyStore) FindByName(ctx context.Context, name string) (*runnertypes.Record, error) {
	if err, ok := f.failLookup[name]; ok {
		return nil, err
	}
	return f.inner.FindByName(ctx, name)
}

func (f *faultyStore) Upsert(ctx context.Context, record *runnertypes.Record) (*runnertypes.Record, error) {
	if err, ok := f.failUpsert[record.Name]; ok {
		return nil, err
	}
	return f.inner.Upsert(ctx, record)
}

// nilLookupStore breaks the FindByName contract by returning (nil, nil).
type nilLookupStore struct {
	inner runnertypes.Store
}

func (s *nilLookupStore) FindByName(_ context.Context, _ string) (*runnertypes.Record, error) {
	return nil, nil
}

func (s *nilLookupStore) Upsert(ctx context.Context, record *runnertypes.Record) (*runnertypes.Record, error) {
	return s.inner.Upsert(ctx, record)
}

// contextLoggingStore logs through the context logger on every lookup.
type contextLoggingStore struct {
	inner runnertypes.Store
}

func (s *contextLoggingStore) FindByName(ctx context.Context, name string) (*runnertypes.Record, error) {
	logging.FromContext(ctx).Info().Msg("looking up runner type")
	return s.inner.FindByName(ctx, name)
}

func (s *contextLoggingStore) Upsert(ctx context.Context, record *runnertypes.Record) (*runnertypes.Record, error) {
	return s.inner.Upsert(ctx, record)
}

// captureSink records audit events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []runnertypes.AuditEvent
}

func (c *captureSink) Record(_ context.Context, event runnertypes.AuditEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureSink) Events() []runnertypes.AuditEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]runnertypes.AuditEvent, len(c.events))
	copy(out, c.events)
	return out
}

func localDefinition() runnertypes.Definition {
	return runnertypes.Definition{
		Name:         "run-local",
		Description:  "Local command runner.",
		Enabled:      true,
		RunnerModule: "runners/local",
		Parameters: map[string]runnertypes.ParameterSpec{
			"timeout": {
				Type:    runnertypes.ParameterTypeInteger,
				Default: 1800,
			},
		},
	}
}

func newReconciler(t *testing.T, store runnertypes.Store, opts ...reconciler.Option) reconciler.Reconciler {
	t.Helper()
	opts = append(opts, reconciler.WithLogger(logging.NewNopLogger()))
	r, err := reconciler.New(store, opts...)
	require.NoError(t, err)
	return r
}

func TestNewRequiresStore(t *testing.T) {
	_, err := reconciler.New(nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestReconcileEmptyStoreCreates(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store)

	result := r.Reconcile(ctx, catalogs.New(localDefinition()))

	require.Len(t, result.Outcomes, 1)
	outcome := result.Outcomes[0]
	assert.Equal(t, "run-local", outcome.Name)
	assert.Equal(t, reconciler.OpCreated, outcome.Op)
	require.NotNil(t, outcome.Record)
	assert.NotEmpty(t, outcome.Record.ID)

	assert.Equal(t, 1, store.Len())
	stored, err := store.FindByName(ctx, "run-local")
	require.NoError(t, err)
	assert.Equal(t, 1800, stored.Parameters["timeout"].Default)
	assert.True(t, result.IsSuccess())
}

func TestReconcileIdempotence(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store)
	catalog := catalogs.Builtin()

	first := r.Reconcile(ctx, catalog)
	require.True(t, first.IsSuccess())
	assert.Equal(t, 9, first.Created())
	assert.Equal(t, 2, first.Skipped())

	snapshot := make(map[string]*runnertypes.Record)
	for _, outcome := range first.Outcomes {
		if outcome.Record != nil {
			snapshot[outcome.Name] = outcome.Record
		}
	}

	second := r.Reconcile(ctx, catalog)
	require.True(t, second.IsSuccess())
	assert.Equal(t, 0, second.Created())
	assert.Equal(t, 9, second.Updated())
	assert.Equal(t, 2, second.Skipped())

	// Record contents unchanged from after the first pass.
	for _, outcome := range second.Outcomes {
		if outcome.Record == nil {
			continue
		}
		assert.Equal(t, snapshot[outcome.Name], outcome.Record, "record for %s changed", outcome.Name)
	}
}

func TestReconcileIdentityPreservation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store)

	first := r.Reconcile(ctx, catalogs.New(localDefinition()))
	require.Equal(t, reconciler.OpCreated, first.Outcomes[0].Op)
	originalID := first.Outcomes[0].Record.ID

	// Re-register an updated definition under the same name.
	updated := localDefinition()
	updated.Description = "Local command runner, now with more description."
	updated.Parameters["timeout"] = runnertypes.ParameterSpec{
		Type:    runnertypes.ParameterTypeInteger,
		Default: 3600,
	}

	second := r.Reconcile(ctx, catalogs.New(updated))
	require.Equal(t, reconciler.OpUpdated, second.Outcomes[0].Op)
	assert.Equal(t, originalID, second.Outcomes[0].Record.ID)

	stored, err := store.FindByName(ctx, "run-local")
	require.NoError(t, err)
	assert.Equal(t, originalID, stored.ID)
	assert.Equal(t, 3600, stored.Parameters["timeout"].Default)
}

func TestReconcileExperimentalFilter(t *testing.T) {
	ctx := context.Background()

	experimental := localDefinition()
	experimental.Name = "run-windows-cmd"
	experimental.Experimental = true
	catalog := catalogs.New(experimental)

	t.Run("excluded by default", func(t *testing.T) {
		store := memory.New()
		r := newReconciler(t, store)

		result := r.Reconcile(ctx, catalog)
		require.Len(t, result.Outcomes, 1)
		assert.Equal(t, reconciler.OpSkipped, result.Outcomes[0].Op)
		assert.Nil(t, result.Outcomes[0].Record)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("included when requested", func(t *testing.T) {
		store := memory.New()
		r := newReconciler(t, store, reconciler.WithExperimental(true))

		result := r.Reconcile(ctx, catalog)
		require.Equal(t, reconciler.OpCreated, result.Outcomes[0].Op)

		// The persisted record never carries the experimental marker,
		// and the catalog's own definition stays untouched.
		assert.Equal(t, 1, store.Len())
		assert.True(t, catalog.Definitions()[0].Experimental)

		again := r.Reconcile(ctx, catalog)
		assert.Equal(t, reconciler.OpUpdated, again.Outcomes[0].Op)
	})
}

func TestReconcileFailureIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store)

	good1 := localDefinition()
	bad := localDefinition()
	bad.Name = "run-broken"
	bad.RunnerModule = "" // fails validation
	good2 := localDefinition()
	good2.Name = "http-runner"
	good2.RunnerModule = "runners/http"

	result := r.Reconcile(ctx, catalogs.New(good1, bad, good2))

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, reconciler.OpCreated, result.Outcomes[0].Op)
	assert.Equal(t, reconciler.OpFailed, result.Outcomes[1].Op)
	assert.Equal(t, reconciler.OpCreated, result.Outcomes[2].Op)

	assert.True(t, errors.IsValidationError(result.Outcomes[1].Err))
	assert.False(t, result.IsSuccess())
	assert.Len(t, result.Errors(), 1)

	// The third definition's persistence is unaffected by the second's failure.
	_, err := store.FindByName(ctx, "http-runner")
	assert.NoError(t, err)
	_, err = store.FindByName(ctx, "run-broken")
	assert.True(t, errors.IsNotFound(err))
}

func TestReconcileLookupFailureIsFatalForDefinitionOnly(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()
	store := &faultyStore{
		inner: inner,
		failLookup: map[string]error{
			"run-local": errors.NewStoreError("find", "runner type", "run-local", errors.New("connection reset")),
		},
	}
	r := newReconciler(t, store)

	other := localDefinition()
	other.Name = "run-python"
	other.RunnerModule = "runners/python"

	result := r.Reconcile(ctx, catalogs.New(localDefinition(), other))

	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, reconciler.OpFailed, result.Outcomes[0].Op)
	assert.True(t, errors.IsStoreError(result.Outcomes[0].Err))
	assert.Equal(t, reconciler.OpCreated, result.Outcomes[1].Op)
}

func TestReconcilePersistenceFailure(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()
	store := &faultyStore{
		inner: inner,
		failUpsert: map[string]error{
			"run-local": errors.NewStoreError("upsert", "runner type", "run-local", errors.New("constraint violation")),
		},
	}
	r := newReconciler(t, store)

	result := r.Reconcile(ctx, catalogs.New(localDefinition()))

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, reconciler.OpFailed, result.Outcomes[0].Op)
	assert.True(t, errors.IsStoreError(result.Outcomes[0].Err))
	assert.Equal(t, 0, inner.Len())
}

func TestReconcileToleratesNilLookupResult(t *testing.T) {
	ctx := context.Background()
	store := &nilLookupStore{inner: memory.New()}
	r := newReconciler(t, store)

	result := r.Reconcile(ctx, catalogs.New(localDefinition()))

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, reconciler.OpCreated, result.Outcomes[0].Op)
	require.NotNil(t, result.Outcomes[0].Record)
	assert.NotEmpty(t, result.Outcomes[0].Record.ID)
}

func TestReconcileContextCarriesRunnerTypeLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	store := &contextLoggingStore{inner: memory.New()}
	r, err := reconciler.New(store, reconciler.WithLogger(testLogger.Logger))
	require.NoError(t, err)

	r.Reconcile(context.Background(), catalogs.New(localDefinition()))

	assert.True(t, testLogger.Contains(`"runner_type":"run-local"`))
	assert.True(t, testLogger.Contains("looking up runner type"))
}

func TestReconcileRequiredDefaultMutualExclusion(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store)

	def := localDefinition()
	def.Parameters["hosts"] = runnertypes.ParameterSpec{
		Type:     runnertypes.ParameterTypeString,
		Required: true,
		Default:  "localhost",
	}

	result := r.Reconcile(ctx, catalogs.New(def))

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, reconciler.OpFailed, result.Outcomes[0].Op)
	assert.True(t, errors.IsValidationError(result.Outcomes[0].Err))
	assert.Contains(t, result.Outcomes[0].Err.Error(), "required parameter cannot carry a default")
	assert.Equal(t, 0, store.Len())
}

func TestReconcileAuditEvents(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	sink := &captureSink{}
	r := newReconciler(t, store, reconciler.WithAuditSink(sink))

	catalog := catalogs.New(localDefinition())

	r.Reconcile(ctx, catalog)
	r.Reconcile(ctx, catalog)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "created", events[0].Operation)
	assert.Equal(t, "updated", events[1].Operation)
	assert.Equal(t, "run-local", events[0].Name)
	require.NotNil(t, events[0].Record)
	assert.Equal(t, events[0].Record.ID, events[1].Record.ID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestReconcileNoAuditOnFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	sink := &captureSink{}
	r := newReconciler(t, store, reconciler.WithAuditSink(sink))

	bad := localDefinition()
	bad.RunnerModule = ""

	r.Reconcile(ctx, catalogs.New(bad))
	assert.Empty(t, sink.Events())
}

func TestReconcileBuiltinCatalogEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := newReconciler(t, store, reconciler.WithExperimental(true))

	result := r.Reconcile(ctx, catalogs.Builtin())

	require.True(t, result.IsSuccess(), "errors: %v", result.Errors())
	assert.Equal(t, 11, result.Created())
	assert.Equal(t, 11, store.Len())
	assert.Contains(t, result.Summary(), "successful")

	// Outcome order follows catalog order.
	assert.Equal(t, "run-local", result.Outcomes[0].Name)
	assert.Equal(t, "run-windows-script", result.Outcomes[10].Name)
}

func TestResultSummaryAndCounts(t *testing.T) {
	result := reconciler.NewResult()
	result.Outcomes = []reconciler.Outcome{
		{Name: "a", Op: reconciler.OpCreated},
		{Name: "b", Op: reconciler.OpUpdated},
		{Name: "c", Op: reconciler.OpSkipped},
		{Name: "d", Op: reconciler.OpFailed, Err: errors.New("boom")},
	}
	result.Finalize()

	assert.Equal(t, 1, result.Created())
	assert.Equal(t, 1, result.Updated())
	assert.Equal(t, 1, result.Skipped())
	assert.Equal(t, 1, result.Failed())
	assert.False(t, result.IsSuccess())
	assert.Contains(t, result.Summary(), "1 failures")
	assert.Contains(t, result.Outcomes[3].String(), "boom")
}
