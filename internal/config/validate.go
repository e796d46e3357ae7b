package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateServers(); err != nil {
		return err
	}
	if c.Watch.PollIntervalMillis <= 0 {
		return errors.New("watch.poll_interval_ms must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateServers() error {
	seen := make(map[string]bool, len(c.Servers))
	for i, s := range c.Servers {
		if s.Name == "" {
			return fmt.Errorf("servers[%d].name must be set", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("servers[%d].name %q is duplicated", i, s.Name)
		}
		seen[s.Name] = true
		if s.URL == "" {
			return fmt.Errorf("servers[%d].url must be set", i)
		}
		if s.TimeoutSeconds < 0 {
			return fmt.Errorf("servers[%d].timeout_seconds must not be negative", i)
		}
	}
	if !seen[c.DefaultServer] {
		return fmt.Errorf("default_server %q does not match any configured server", c.DefaultServer)
	}
	return nil
}
