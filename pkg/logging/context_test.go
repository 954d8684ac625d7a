package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runnerdeck/runnerdeck/pkg/logging"
)

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestWithLoggerRoundTrip(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	logging.FromContext(ctx).Info().Msg("hello")

	assert.True(t, testLogger.Contains("hello"))
}

func TestWithRunnerType(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithRunnerType(ctx, "run-local")

	logging.FromContext(ctx).Info().Msg("registering")

	assert.True(t, testLogger.Contains(`"runner_type":"run-local"`))
}

func TestWithOperation(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithOperation(ctx, "register_runner_types")

	logging.FromContext(ctx).Info().Msg("starting")

	assert.True(t, testLogger.Contains(`"operation":"register_runner_types"`))
}

func TestWithFieldTypes(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithField(ctx, "attempt", 3)
	ctx = logging.WithField(ctx, "enabled", true)

	logging.FromContext(ctx).Info().Msg("fields")

	assert.True(t, testLogger.Contains(`"attempt":3`))
	assert.True(t, testLogger.Contains(`"enabled":true`))
}
