// Package services holds the external collaborators of the power controller:
// the EC2 control-plane client and runtime configuration.
package services

import (
	"fmt"
	"os"
	"strconv"
)

const defaultPort = "8080"

// Config - runtime configuration resolved from the environment.
//
// The Lambda execution environment supplies credentials and region through
// the default SDK chain; Region is only an explicit override for local runs.
type Config struct {
	// Region overrides the AWS region resolved by the SDK (AWS_REGION).
	Region string
	// Port is the listen port for the local development server (PORT).
	Port string
}

// LoadConfig reads configuration from the environment and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Region: os.Getenv("AWS_REGION"),
		Port:   os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	return cfg, nil
}

// Addr returns the listen address for the local server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
