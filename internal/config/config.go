package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/webnotify/internal/logging"
)

// Config represents the complete configuration for webnotify.
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" json:"logging"`
	Permissions PermissionsConfig `mapstructure:"permissions" yaml:"permissions" json:"permissions"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// PermissionsConfig holds permission-flow configuration.
type PermissionsConfig struct {
	// PromptTimeout retires an unanswered permission prompt as a dismissal.
	// Zero disables the timeout.
	PromptTimeout time.Duration `mapstructure:"prompt_timeout" yaml:"prompt_timeout" json:"prompt_timeout"`

	// Ephemeral runs without persisting any permission decision, the way a
	// private browsing profile would.
	Ephemeral bool `mapstructure:"ephemeral" yaml:"ephemeral" json:"ephemeral"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("WEBNOTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings for env vars whose names differ from the key path.
	if err := v.BindEnv("logging.level", "WEBNOTIFY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBNOTIFY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEBNOTIFY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBNOTIFY_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	if err := validate(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after a successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked copies callbacks and config, releases the lock, then
// notifies. Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	if err := validate(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				return fmt.Errorf("failed to create default config: %w", createErr)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
			}
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.format", "console")
	m.viper.SetDefault("permissions.prompt_timeout", time.Duration(0))
	m.viper.SetDefault("permissions.ephemeral", false)
}

func (m *Manager) createDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	configFile := filepath.Join(configDir, "config.toml")
	content := `# webnotify configuration

[database]
# path = "" # defaults to $XDG_DATA_HOME/webnotify/webnotify.sqlite

[logging]
level = "info"    # trace, debug, info, warn, error
format = "console" # console, json

[permissions]
# prompt_timeout = "0s" # auto-dismiss unanswered prompts; 0 disables
# ephemeral = false     # never persist decisions (private-profile mode)
`
	return os.WriteFile(configFile, []byte(content), filePerm)
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func validate(config *Config) error {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", config.Logging.Level)
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging format %q", config.Logging.Format)
	}

	if config.Permissions.PromptTimeout < 0 {
		return fmt.Errorf("permissions.prompt_timeout must not be negative")
	}

	return nil
}
