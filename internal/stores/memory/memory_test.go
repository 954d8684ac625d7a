package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerdeck/runnerdeck/internal/stores/memory"
	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

func TestFindByNameNotFound(t *testing.T) {
	store := memory.New()

	_, err := store.FindByName(context.Background(), "run-local")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpsertAssignsIdentityOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	record := &runnertypes.Record{
		Name:         "run-local",
		Enabled:      true,
		RunnerModule: "runners/local",
	}

	created, err := store.Upsert(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, record.ID, "input record must not be mutated")

	// An update that carries the identity keeps it.
	created.Description = "updated"
	updated, err := store.Upsert(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, store.Len())
}

func TestUpsertRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	_, err := store.Upsert(ctx, nil)
	assert.True(t, errors.IsStoreError(err))

	_, err = store.Upsert(ctx, &runnertypes.Record{})
	assert.True(t, errors.IsStoreError(err))
}

func TestStoredRecordsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	stored, err := store.Upsert(ctx, &runnertypes.Record{
		Name:         "run-local",
		RunnerModule: "runners/local",
		Parameters: map[string]runnertypes.ParameterSpec{
			"timeout": {Type: runnertypes.ParameterTypeInteger, Default: 1800},
		},
	})
	require.NoError(t, err)

	// Mutating the returned record must not bleed into the store.
	stored.Parameters["timeout"] = runnertypes.ParameterSpec{Type: runnertypes.ParameterTypeBoolean}

	fetched, err := store.FindByName(ctx, "run-local")
	require.NoError(t, err)
	assert.Equal(t, runnertypes.ParameterTypeInteger, fetched.Parameters["timeout"].Type)
}
