package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

func TestRecordPayloadRoundTrip(t *testing.T) {
	record := &runnertypes.Record{
		ID:           "3f1c9a2e-0000-0000-0000-000000000000",
		Name:         "run-local",
		Description:  "Local command runner.",
		Enabled:      true,
		RunnerModule: "runners/local",
		Parameters: map[string]runnertypes.ParameterSpec{
			"timeout": {
				Description: "Action timeout in seconds.",
				Type:        runnertypes.ParameterTypeInteger,
				Default:     float64(1800), // JSON numbers decode as float64
			},
			"sudo": {
				Type:    runnertypes.ParameterTypeBoolean,
				Default: false,
			},
		},
	}

	payload, err := encodeRecord(record)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), record.ID, "identity must not leak into the payload")

	decoded, err := decodeRecord(payload)
	require.NoError(t, err)
	assert.Empty(t, decoded.ID)
	assert.Equal(t, record.Name, decoded.Name)
	assert.Equal(t, record.RunnerModule, decoded.RunnerModule)
	assert.Equal(t, record.Parameters["timeout"].Default, decoded.Parameters["timeout"].Default)

	// Decoded payloads still validate as definitions at the type level.
	assert.NoError(t, decoded.Parameters["timeout"].Validate())
}

func TestDecodeRecordRejectsGarbage(t *testing.T) {
	_, err := decodeRecord([]byte(`{"name": [`))
	assert.Error(t, err)
}
