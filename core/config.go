package core

import (
	"fmt"
	"strings"
	"time"
)

type ProbeConfig struct {
	TimeoutSeconds int    `koanf:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxBodyBytes   int64  `koanf:"max_body_bytes" mapstructure:"max_body_bytes"`
	Method         string `koanf:"method" mapstructure:"method"`
}

type Config struct {
	ServiceName     string      `koanf:"service_name" mapstructure:"service_name"`
	DefaultScenario string      `koanf:"default_scenario" mapstructure:"default_scenario"`
	Probe           ProbeConfig `koanf:"probe" mapstructure:"probe"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName:     "webhookprobe",
		DefaultScenario: "browser-fix",
		Probe: ProbeConfig{
			TimeoutSeconds: 30,
			MaxBodyBytes:   DefaultResponseBodyLimit,
			Method:         "POST",
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.DefaultScenario) == "" {
		return fmt.Errorf("core: default_scenario is required")
	}
	if c.Probe.TimeoutSeconds < 0 {
		return fmt.Errorf("core: probe timeout_seconds must be >= 0")
	}
	if c.Probe.MaxBodyBytes < 0 {
		return fmt.Errorf("core: probe max_body_bytes must be >= 0")
	}
	return nil
}

// ProbeTimeout converts the configured second count into a duration,
// falling back to DefaultProbeTimeout when unset.
func (c Config) ProbeTimeout() time.Duration {
	if c.Probe.TimeoutSeconds <= 0 {
		return DefaultProbeTimeout
	}
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

func (c Config) ResponseBodyLimit() int64 {
	if c.Probe.MaxBodyBytes <= 0 {
		return DefaultResponseBodyLimit
	}
	return c.Probe.MaxBodyBytes
}
