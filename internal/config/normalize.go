package config

import (
	"os"
	"strings"
)

const (
	envURL      = "SUPERVISOR_URL"
	envUsername = "SUPERVISOR_USERNAME"
	envPassword = "SUPERVISOR_PASSWORD"

	defaultServerName = "local"
	defaultServerURL  = "http://localhost:9001/RPC2"
)

func (c *Config) normalize() {
	c.normalizeLogging()
	c.normalizeServers()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) normalizeServers() {
	for i := range c.Servers {
		c.Servers[i].Name = strings.TrimSpace(c.Servers[i].Name)
		c.Servers[i].URL = strings.TrimSpace(c.Servers[i].URL)
	}

	c.DefaultServer = strings.TrimSpace(c.DefaultServer)
	if len(c.Servers) == 0 {
		c.Servers = []Server{{Name: defaultServerName, URL: defaultServerURL}}
		if c.DefaultServer == "" {
			c.DefaultServer = defaultServerName
		}
	}
	if c.DefaultServer == "" {
		c.DefaultServer = c.Servers[0].Name
	}

	for i := range c.Servers {
		if c.Servers[i].Name != c.DefaultServer {
			continue
		}
		if v := strings.TrimSpace(os.Getenv(envURL)); v != "" {
			c.Servers[i].URL = v
		}
		if v := os.Getenv(envUsername); v != "" {
			c.Servers[i].Username = v
			c.Servers[i].Password = os.Getenv(envPassword)
		}
	}
}
