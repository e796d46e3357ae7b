package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"

	supervisor "github.com/axondata/go-supervisor"
)

//go:embed sample_config.toml
var sampleConfig string

// Server describes one supervisord XML-RPC endpoint.
type Server struct {
	Name           string `toml:"name"`
	URL            string `toml:"url"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the configured timeout, or zero for the client default.
func (s Server) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ClientOptions returns the supervisor.Client options for this server.
func (s Server) ClientOptions() []supervisor.Option {
	opts := []supervisor.Option{supervisor.WithCredentials(s.Username, s.Password)}
	if t := s.Timeout(); t > 0 {
		opts = append(opts, supervisor.WithTimeout(t))
	}
	return opts
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Watch contains configuration for the watch command.
type Watch struct {
	PollIntervalMillis int `toml:"poll_interval_ms"`
}

// PollInterval returns the poll interval as a duration.
func (w Watch) PollInterval() time.Duration {
	return time.Duration(w.PollIntervalMillis) * time.Millisecond
}

// Config encapsulates all configuration values for supervisorctl.
type Config struct {
	DefaultServer string   `toml:"default_server"`
	Logging       Logging  `toml:"logging"`
	Watch         Watch    `toml:"watch"`
	Servers       []Server `toml:"servers"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		Watch: Watch{
			PollIntervalMillis: int(supervisor.DefaultPollInterval / time.Millisecond),
		},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/supervisorctl/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// resolved path and whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Server returns the server named name, or the default server when name is
// empty. A name containing "://" is treated as an ad hoc server URL.
func (c *Config) Server(name string) (Server, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.DefaultServer
	}
	if strings.Contains(name, "://") {
		return Server{Name: name, URL: name}, nil
	}
	for _, s := range c.Servers {
		if s.Name == name {
			return s, nil
		}
	}
	return Server{}, fmt.Errorf("server %q is not configured", name)
}

// ManagerServers converts the configured servers for supervisor.NewManager.
func (c *Config) ManagerServers() []supervisor.Server {
	servers := make([]supervisor.Server, 0, len(c.Servers))
	for _, s := range c.Servers {
		servers = append(servers, supervisor.Server{
			Name:     s.Name,
			URI:      s.URL,
			Username: s.Username,
			Password: s.Password,
			Timeout:  s.Timeout(),
		})
	}
	return servers
}

// CreateSample writes the sample configuration to path atomically.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return renameio.WriteFile(path, []byte(sampleConfig), 0o600)
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
