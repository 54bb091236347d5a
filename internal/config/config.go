// Package config handles the configuration directory, the config file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todoctl"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.toml"

	// LogFile receives debug logs while the terminal is owned by the UI.
	LogFile = "todoctl.log"

	// DefaultBaseURL is the backend address used when nothing else is configured.
	DefaultBaseURL = "http://localhost:5000/"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 5 * time.Second

	// Environment overrides.
	EnvBaseURL = "TODOCTL_BASE_URL"
	EnvTimeout = "TODOCTL_TIMEOUT"
)

// Delete methods accepted by delete_method.
const (
	DeleteGet    = "get"
	DeleteDelete = "delete"
)

// ErrInvalid is returned for configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// BaseURL is the root of the to-do REST backend.
	BaseURL string

	// Timeout bounds every backend request.
	Timeout time.Duration

	// DeleteMethod is the HTTP method used for delete endpoints: "get" or "delete".
	DeleteMethod string
}

// file is the on-disk shape of config.toml.
type file struct {
	BaseURL      string `toml:"base_url"`
	Timeout      string `toml:"timeout"`
	DeleteMethod string `toml:"delete_method"`
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoctl or $HOME/.config/todoctl.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:          dir,
		BaseURL:      DefaultBaseURL,
		Timeout:      DefaultTimeout,
		DeleteMethod: DeleteGet,
	}, nil
}

// Load creates a Config and applies, in order, the config file and the
// environment. Flags are applied by the caller afterwards.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the config file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// OpenLog opens the log file for appending, creating the config directory
// and the file as needed.
func (c *Config) OpenLog() (*os.File, error) {
	if err := c.EnsureDir(); err != nil {
		return nil, fmt.Errorf("%w: log file: %v", ErrInvalid, err)
	}
	f, err := os.OpenFile(c.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: log file: %v", ErrInvalid, err)
	}
	return f, nil
}

// loadFile applies config.toml if present. A missing file is not an error.
func (c *Config) loadFile() error {
	var f file
	md, err := toml.DecodeFile(c.Path(), &f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalid, c.Path(), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %s", ErrInvalid, c.Path(), undecoded[0])
	}

	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Timeout != "" {
		d, err := parseTimeout(f.Timeout)
		if err != nil {
			return fmt.Errorf("%s: timeout: %w", c.Path(), err)
		}
		c.Timeout = d
	}
	if f.DeleteMethod != "" {
		c.DeleteMethod = strings.ToLower(strings.TrimSpace(f.DeleteMethod))
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, s)
	}
	return d, nil
}

// Validate checks the settings needed to reach the backend.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: base URL is not set", ErrInvalid)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be an http(s) URL", ErrInvalid, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	switch c.DeleteMethod {
	case DeleteGet, DeleteDelete:
	default:
		return fmt.Errorf("%w: delete_method must be %q or %q, got %q", ErrInvalid, DeleteGet, DeleteDelete, c.DeleteMethod)
	}
	return nil
}
