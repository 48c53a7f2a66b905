package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OUTPUT_PRECISION", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(4), cfg.OutputPrecision)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OUTPUT_PRECISION", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int32(2), cfg.OutputPrecision)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	t.Setenv("OUTPUT_PRECISION", "lots")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("OUTPUT_PRECISION", "-1")
	_, err = Load()
	require.Error(t, err)
}
