// Package config loads the tool configuration and parameter batch files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Interface string              `yaml:"interface"` // default interface name
	Verbose   bool                `yaml:"verbose"`
	Profiles  map[string][]string `yaml:"profiles"` // name -> parameter tokens
}

// LoadConfig reads filename over the built-in defaults. An empty filename
// returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: map[string][]string{},
	}

	// If no config file specified, return defaults
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// Profile returns the parameter tokens of a named profile.
func (c *Config) Profile(name string) ([]string, error) {
	tokens, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("no such profile: %s", name)
	}
	return tokens, nil
}
