package config

import (
	"os"
	"strings"
	"time"
)

// Default values for configuration.
const (
	DefaultOnMalformed    = "abort"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvTimesheets  = "DAYTALLY_TIMESHEETS"
	EnvOnMalformed = "DAYTALLY_ON_MALFORMED"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Timesheets:  []string{},
		OnMalformed: DefaultOnMalformed,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if sheets := os.Getenv(EnvTimesheets); sheets != "" {
		c.Timesheets = c.Timesheets[:0]
		for _, s := range strings.Split(sheets, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Timesheets = append(c.Timesheets, s)
			}
		}
	}

	if policy := os.Getenv(EnvOnMalformed); policy != "" {
		c.OnMalformed = policy
	}
}
