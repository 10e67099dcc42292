package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the immutable startup settings shared by the sampler
// and emitter. It is constructed once and passed by reference; nothing
// mutates it after startup.
type Config struct {
	// Destination is the statsd collector host (port is fixed).
	Destination string `yaml:"destination"`
	// Namespace prefixes every metric name, ahead of the hostname.
	Namespace string `yaml:"namespace"`
	// Filesystem is the path whose free-space ratio is reported.
	Filesystem string `yaml:"filesystem"`
	// Interface is the network interface whose byte counters are read.
	Interface string `yaml:"interface"`
}

// FromArgs builds a Config from the four required positional arguments:
// destination, namespace, filesystem, interface.
func FromArgs(args []string) (*Config, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	cfg := &Config{
		Destination: args[0],
		Namespace:   args[1],
		Filesystem:  args[2],
		Interface:   args[3],
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a Config from a YAML file. All four settings are required.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Destination == "" {
		return fmt.Errorf("destination cannot be empty")
	}
	if c.Namespace == "" {
		return fmt.Errorf("namespace cannot be empty")
	}
	if c.Filesystem == "" {
		return fmt.Errorf("filesystem cannot be empty")
	}
	if c.Interface == "" {
		return fmt.Errorf("interface cannot be empty")
	}
	return nil
}
