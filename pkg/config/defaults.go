package config

import (
	"os"
	"strings"
	"time"
)

// Default values for configuration.
const (
	DefaultContextBefore  = 3
	DefaultContextAfter   = 3
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvDatePrefix = "LOGEXCERPT_DATE_PREFIX"
	EnvInputs     = "LOGEXCERPT_INPUTS"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Inputs: []string{},
		Context: ContextConfig{
			Before: DefaultContextBefore,
			After:  DefaultContextAfter,
		},
		Divider: true,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if prefix := os.Getenv(EnvDatePrefix); prefix != "" {
		c.DatePrefix = prefix
	}
	if inputs := os.Getenv(EnvInputs); inputs != "" {
		c.Inputs = strings.Fields(inputs)
	}
}
