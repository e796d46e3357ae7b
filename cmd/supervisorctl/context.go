package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
	"github.com/axondata/go-supervisor/internal/config"
	"github.com/axondata/go-supervisor/internal/logging"
)

type commandContext struct {
	configPath string
	server     string
	username   string
	password   string
	timeout    time.Duration
	logLevel   string
	logFormat  string

	configOnce   sync.Once
	config       *config.Config
	resolvedPath string
	configExists bool
	configErr    error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.resolvedPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// reloadConfig re-reads the configuration file, replacing the cached copy
// only when the new file is valid.
func (c *commandContext) reloadConfig() (*config.Config, error) {
	if _, err := c.ensureConfig(); err != nil {
		return nil, err
	}
	cfg, _, _, err := config.Load(c.resolvedPath)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

func (c *commandContext) logger() (*slog.Logger, error) {
	level, format := c.logLevel, c.logFormat
	if c.config != nil {
		if level == "" {
			level = c.config.Logging.Level
		}
		if format == "" {
			format = c.config.Logging.Format
		}
	}
	return logging.New(logging.Options{Level: level, Format: format})
}

// clientOptions layers flag overrides on top of the server's configured
// options. A lone --password replaces the configured user's password.
func (c *commandContext) clientOptions(srv config.Server) ([]supervisor.Option, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}
	opts := srv.ClientOptions()
	switch {
	case c.username != "":
		opts = append(opts, supervisor.WithCredentials(c.username, c.password))
	case c.password != "":
		if srv.Username == "" {
			return nil, fmt.Errorf("server %s: --password needs --username or a configured username", srv.Name)
		}
		opts = append(opts, supervisor.WithCredentials(srv.Username, c.password))
	}
	if c.timeout > 0 {
		opts = append(opts, supervisor.WithTimeout(c.timeout))
	}
	return append(opts, supervisor.WithLogger(logger)), nil
}

func (c *commandContext) client() (*supervisor.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	srv, err := cfg.Server(c.server)
	if err != nil {
		return nil, err
	}
	opts, err := c.clientOptions(srv)
	if err != nil {
		return nil, err
	}
	client, err := supervisor.New(srv.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("server %s: %w", srv.Name, err)
	}
	return client, nil
}

func (c *commandContext) withClient(fn func(*supervisor.Client) error) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	return fn(client)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
