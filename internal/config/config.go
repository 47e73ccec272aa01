// Package config loads the optional niuniu.hcl configuration file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "niuniu.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	LogFile  string          `hcl:"log_file,optional"`
	Color    *bool           `hcl:"color,optional"`
	Server   *ServerSettings `hcl:"server,block"`
	Simulate *SimulateConfig `hcl:"simulate,block"`
}

// ServerSettings configures the evaluation service
type ServerSettings struct {
	Address             string `hcl:"address,optional"`
	Port                int    `hcl:"port,optional"`
	WriteTimeoutSeconds int    `hcl:"write_timeout_seconds,optional"`
	MaxMessageSize      int64  `hcl:"max_message_size,optional"`
}

// SimulateConfig configures Monte Carlo runs
type SimulateConfig struct {
	Iterations int   `hcl:"iterations,optional"`
	Workers    int   `hcl:"workers,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Color == nil {
		color := true
		c.Color = &color
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 10
	}
	if c.Server.MaxMessageSize == 0 {
		c.Server.MaxMessageSize = 4096
	}

	if c.Simulate == nil {
		c.Simulate = &SimulateConfig{}
	}
	if c.Simulate.Iterations == 0 {
		c.Simulate.Iterations = 100000
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = min(runtime.NumCPU(), 8)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.WriteTimeoutSeconds < 1 {
		return fmt.Errorf("write_timeout_seconds must be positive")
	}
	if c.Server.MaxMessageSize < 64 {
		return fmt.Errorf("max_message_size must be at least 64 bytes")
	}
	if c.Simulate.Iterations < 1 {
		return fmt.Errorf("simulate iterations must be positive")
	}
	if c.Simulate.Workers < 1 || c.Simulate.Workers > 64 {
		return fmt.Errorf("simulate workers must be between 1 and 64")
	}
	return nil
}

// ServerAddress returns the listen address for the service
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
