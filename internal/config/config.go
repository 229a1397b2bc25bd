package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Store backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Backends lists the valid store.backend values.
var Backends = []string{BackendFile, BackendMemory, BackendPostgres}

// Environment variables that override the file.
const (
	EnvStore    = "VSHELL_STORE"
	EnvStateDir = "VSHELL_STATE_DIR"
	EnvDSN      = "VSHELL_DSN"
	EnvUser     = "VSHELL_USER"
	EnvHost     = "VSHELL_HOST"

	// EnvDatabaseURL is consulted when VSHELL_DSN is unset.
	EnvDatabaseURL = "DATABASE_URL"
)

type PromptConfig struct {
	User string `yaml:"user,omitempty"`
	Host string `yaml:"host,omitempty"`
}

type StoreConfig struct {
	Backend   string `yaml:"backend,omitempty"`
	Dir       string `yaml:"dir,omitempty"`
	DSN       string `yaml:"dsn,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	Backups   *int   `yaml:"backups,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
}

type Config struct {
	Prompt PromptConfig `yaml:"prompt"`
	Store  StoreConfig  `yaml:"store"`
}

const ConfigFileName = "vshell.yaml"

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Prompt: PromptConfig{
			User: vshell.DefaultUser,
			Host: vshell.DefaultHost,
		},
		Store: StoreConfig{
			Backend:   BackendFile,
			Dir:       DefaultStateDir(),
			Namespace: vshell.DefaultNamespace,
			Backups:   IntPtr(vshell.DefaultBackupCount),
			Timeout:   vshell.DefaultStoreTimeout.String(),
		},
	}
}

// DefaultStateDir is the per-user directory for the file store.
func DefaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vshell")
	}
	return ".vshell"
}

// Load reads vshell.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge overlays the non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	setString(&c.Prompt.User, other.Prompt.User)
	setString(&c.Prompt.Host, other.Prompt.Host)
	setString(&c.Store.Backend, other.Store.Backend)
	setString(&c.Store.Dir, other.Store.Dir)
	setString(&c.Store.DSN, other.Store.DSN)
	setString(&c.Store.Namespace, other.Store.Namespace)
	setString(&c.Store.Timeout, other.Store.Timeout)
	if other.Store.Backups != nil {
		c.Store.Backups = IntPtr(*other.Store.Backups)
	}
}

// ApplyEnv overlays environment overrides. lookup is os.LookupEnv outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	env := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	setString(&c.Store.Backend, env(EnvStore))
	setString(&c.Store.Dir, env(EnvStateDir))
	if dsn := env(EnvDSN); dsn != "" {
		c.Store.DSN = dsn
	} else if c.Store.DSN == "" {
		c.Store.DSN = env(EnvDatabaseURL)
	}
	setString(&c.Prompt.User, env(EnvUser))
	setString(&c.Prompt.Host, env(EnvHost))
}

// Validate checks the merged configuration. Errors wrap vshell.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Store.Dir == "" {
			return fmt.Errorf("%w: store.dir is required for the file backend", vshell.ErrInvalidConfig)
		}
	case BackendPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("%w: store.dsn (or %s) is required for the postgres backend", vshell.ErrInvalidConfig, EnvDSN)
		}
	default:
		return fmt.Errorf("%w: unknown store backend %q (want one of %v)", vshell.ErrInvalidConfig, c.Store.Backend, Backends)
	}
	if !ValidNamespace(c.Store.Namespace) {
		return fmt.Errorf("%w: store.namespace %q must be a single name without path separators", vshell.ErrInvalidConfig, c.Store.Namespace)
	}
	if c.Store.Backups != nil && *c.Store.Backups < 0 {
		return fmt.Errorf("%w: store.backups must not be negative", vshell.ErrInvalidConfig)
	}
	if _, err := c.Store.TimeoutDuration(); err != nil {
		return err
	}
	if !validPromptPart(c.Prompt.User) || !validPromptPart(c.Prompt.Host) {
		return fmt.Errorf("%w: prompt.user and prompt.host must be non-empty and contain no whitespace", vshell.ErrInvalidConfig)
	}
	return nil
}

// BackupCount returns store.backups, or the default when it was never set.
// An explicit 0 disables backups.
func (s StoreConfig) BackupCount() int {
	if s.Backups == nil {
		return vshell.DefaultBackupCount
	}
	return *s.Backups
}

// ValidNamespace reports whether ns can name a store partition. The file
// backend uses it as a directory name under store.dir; empty means default.
func ValidNamespace(ns string) bool {
	if ns == "" {
		return true
	}
	return ns != "." && ns != ".." && !strings.ContainsAny(ns, `/\`)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// TimeoutDuration parses store.timeout, defaulting when empty.
func (s StoreConfig) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return vshell.DefaultStoreTimeout, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: invalid store.timeout %q", vshell.ErrInvalidConfig, s.Timeout)
	}
	return d, nil
}

func validPromptPart(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			return false
		}
	}
	return true
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
