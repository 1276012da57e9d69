package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/scenescope/internal/panel"
)

// Config holds application configuration.
type Config struct {
	Bridge   BridgeConfig   `mapstructure:"bridge"`
	Journal  JournalConfig  `mapstructure:"journal"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Simulate SimulateConfig `mapstructure:"simulate"`
}

// BridgeConfig holds the connection to the instrumented target.
type BridgeConfig struct {
	URL            string        `mapstructure:"url"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay"`
	DialTimeout    time.Duration `mapstructure:"dial_timeout"`
}

// JournalConfig holds session recording settings.
type JournalConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Path         string `mapstructure:"path"`
	KeepSessions int    `mapstructure:"keep_sessions"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ErrorTimeout time.Duration `mapstructure:"error_timeout"`
	StartPanel   string        `mapstructure:"start_panel"`
}

// LogConfig selects the log destination. File "-" means stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SimulateConfig holds the simulated target settings.
type SimulateConfig struct {
	Addr     string        `mapstructure:"addr"`
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultPath is $SCENESCOPE_CONFIG or ~/.config/scenescope/config.toml.
func DefaultPath() string {
	if p := os.Getenv("SCENESCOPE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home(), ".config", "scenescope", "config.toml")
}

// New returns a viper instance with defaults, env overrides and the config
// file at path (DefaultPath when empty) loaded if present. Callers may bind
// flags to it before calling Decode.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	// default values
	v.SetDefault("bridge.url", "ws://127.0.0.1:7357/bridge")
	v.SetDefault("bridge.reconnect_delay", "2s")
	v.SetDefault("bridge.dial_timeout", "5s")
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(home(), ".local", "share", "scenescope", "journal.db"))
	v.SetDefault("journal.keep_sessions", 20)
	v.SetDefault("ui.error_timeout", "5s")
	v.SetDefault("ui.start_panel", string(panel.Scene))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home(), ".local", "state", "scenescope", "scenescope.log"))
	v.SetDefault("simulate.addr", "127.0.0.1:7357")
	v.SetDefault("simulate.interval", "1s")

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("SCENESCOPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// Decode unmarshals and validates v.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Journal.Path = expandHome(c.Journal.Path)
	if c.Log.File != "-" {
		c.Log.File = expandHome(c.Log.File)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads configuration from file and env. Env var overrides use prefix SCENESCOPE_.
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(v)
}

// Validate rejects values the inspector cannot run with.
func (c Config) Validate() error {
	if _, err := panel.ParseTag(c.UI.StartPanel); err != nil {
		return fmt.Errorf("ui.start_panel: %w", err)
	}
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"bridge.reconnect_delay", c.Bridge.ReconnectDelay},
		{"bridge.dial_timeout", c.Bridge.DialTimeout},
		{"ui.error_timeout", c.UI.ErrorTimeout},
		{"simulate.interval", c.Simulate.Interval},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.key, d.d)
		}
	}
	if c.Journal.KeepSessions < 0 {
		return fmt.Errorf("journal.keep_sessions must not be negative, got %d", c.Journal.KeepSessions)
	}
	return nil
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("bridge.url", cfg.Bridge.URL)
	v.Set("bridge.reconnect_delay", cfg.Bridge.ReconnectDelay.String())
	v.Set("bridge.dial_timeout", cfg.Bridge.DialTimeout.String())
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("journal.keep_sessions", cfg.Journal.KeepSessions)
	v.Set("ui.error_timeout", cfg.UI.ErrorTimeout.String())
	v.Set("ui.start_panel", cfg.UI.StartPanel)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("simulate.addr", cfg.Simulate.Addr)
	v.Set("simulate.interval", cfg.Simulate.Interval.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

func expandHome(p string) string {
	if p == "~" {
		return home()
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return filepath.Join(home(), rest)
	}
	return p
}
