// Package config loads the bigreal command configuration from the
// environment.
package config

import (
	"fmt"
	"math/big"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of all environment variables read by Load.
const Prefix = "BIGREAL"

// Config holds the command configuration.
type Config struct {
	Prec     uint   `envconfig:"PREC" default:"150"`
	Rounding string `envconfig:"ROUNDING" default:"ToNearestEven"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from BIGREAL_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if _, err := cfg.Mode(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Mode returns the rounding mode named by cfg.Rounding.
func (cfg *Config) Mode() (big.RoundingMode, error) {
	return ParseMode(cfg.Rounding)
}

// ParseMode returns the big.RoundingMode whose String method returns s.
func ParseMode(s string) (big.RoundingMode, error) {
	for m := big.ToNearestEven; m <= big.ToPositiveInf; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return big.ToNearestEven, fmt.Errorf("invalid rounding mode %q", s)
}

// GetValueOrDefault returns the value of the environment variable name, or
// def if it is not set.
func GetValueOrDefault(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}
