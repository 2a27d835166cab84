// Package config loads gtlib settings from a TOML file and GTLIB_ environment
// variables, and builds the file logger used by sessions and clients.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/gtlib/network"
)

// EnvPrefix is prepended to every environment override, e.g. GTLIB_LOG_LEVEL
const EnvPrefix = "GTLIB"

// Config holds application configuration.
type Config struct {
	Event  EventConfig  `mapstructure:"event"`
	Log    LogConfig    `mapstructure:"log"`
	Remote RemoteConfig `mapstructure:"remote"`
}

// EventConfig holds input wait settings. A negative Timeout waits indefinitely.
type EventConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	File    string `mapstructure:"file"`
	MaxSize int64  `mapstructure:"max_size"`
}

// RemoteConfig holds window-manager settings.
type RemoteConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Service string        `mapstructure:"service"`
	Timeout time.Duration `mapstructure:"timeout"`
	Width   int           `mapstructure:"width"`
	Height  int           `mapstructure:"height"`
}

// Load reads configuration from path (optional) and env.
// A missing file is not an error when path is empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	net := network.DefaultConfig()

	v.SetDefault("event.timeout", 100*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", int64(10*1024*1024))
	v.SetDefault("remote.enabled", false)
	v.SetDefault("remote.url", net.URL)
	v.SetDefault("remote.service", net.Service)
	v.SetDefault("remote.timeout", net.RequestTimeout)
	v.SetDefault("remote.width", net.Width)
	v.SetDefault("remote.height", net.Height)
}

// Validate rejects values the toolkit cannot run with
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Remote.Enabled && (c.Remote.Width <= 0 || c.Remote.Height <= 0) {
		return fmt.Errorf("remote.width and remote.height must be positive, got %dx%d", c.Remote.Width, c.Remote.Height)
	}
	return nil
}

// Network converts the remote section into a transport configuration
func (c Config) Network() *network.Config {
	nc := network.DefaultConfig()
	nc.URL = c.Remote.URL
	nc.Service = c.Remote.Service
	nc.RequestTimeout = c.Remote.Timeout
	nc.Width = c.Remote.Width
	nc.Height = c.Remote.Height
	return nc
}
