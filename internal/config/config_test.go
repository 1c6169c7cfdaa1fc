package config

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{Prec: 150, Rounding: "ToNearestEven", LogLevel: "warn"}, cfg)

	m, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, big.ToNearestEven, m)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("BIGREAL_PREC", "512")
	t.Setenv("BIGREAL_ROUNDING", "ToZero")
	t.Setenv("BIGREAL_LOG_LEVEL", "debug")
	t.Setenv("BIGREAL_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint(512), cfg.Prec)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDev)
	m, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, big.ToZero, m)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("BIGREAL_PREC", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidRounding(t *testing.T) {
	t.Setenv("BIGREAL_ROUNDING", "sideways")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for m := big.ToNearestEven; m <= big.ToPositiveInf; m++ {
		p, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, p)
	}
	_, err := ParseMode("toNearestEven")
	assert.Error(t, err)
}

func TestGetValueOrDefault(t *testing.T) {
	t.Setenv("BIGREAL_TEST_SET", "value")
	t.Setenv("BIGREAL_TEST_EMPTY", "")
	assert.Equal(t, "value", GetValueOrDefault("BIGREAL_TEST_SET", "def"))
	assert.Equal(t, "", GetValueOrDefault("BIGREAL_TEST_EMPTY", "def"))
	assert.Equal(t, "def", GetValueOrDefault("BIGREAL_TEST_UNSET_VARIABLE", "def"))
}
