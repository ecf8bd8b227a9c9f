// SPDX-License-Identifier: EPL-2.0

// Package config loads the audmix command configuration from defaults, an
// optional YAML file, a .env file and AUDMIX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
)

// EnvPrefix prefixes every environment variable, e.g. AUDMIX_STREAM_SAMPLE_RATE.
const EnvPrefix = "AUDMIX"

// Config holds all configuration for the command.
type Config struct {
	Stream  StreamConfig  `mapstructure:"stream"`
	Device  DeviceConfig  `mapstructure:"device"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StreamConfig is the output stream format and category.
type StreamConfig struct {
	SampleRate int    `mapstructure:"sample_rate"`
	Channels   int    `mapstructure:"channels"`
	Usage      string `mapstructure:"usage"`
}

// DeviceConfig selects the output backend.
type DeviceConfig struct {
	Backend string        `mapstructure:"backend"`
	Buffer  time.Duration `mapstructure:"buffer"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("stream.sample_rate", 44100)
	v.SetDefault("stream.channels", 2)
	v.SetDefault("stream.usage", device.UsageMedia.String())
	v.SetDefault("device.backend", device.BackendOto)
	v.SetDefault("device.buffer", "20ms")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// LoadConfig loads the configuration into the global viper instance, which
// carries the command line flag bindings.
func LoadConfig(file string) (*Config, error) {
	return Load(viper.GetViper(), file)
}

// Load reads configuration into v. When file is empty, config.yaml is
// searched for in the working directory, $HOME/.audmix and /etc/audmix; a
// missing file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.audmix")
		v.AddConfigPath("/etc/audmix")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment variables")
	} else {
		slog.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv loads variables from the given .env files, or from ./.env when
// none are given, without overriding variables already set. Missing files
// are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// Format returns the configured stream format.
func (c *Config) Format() audio.Format {
	return audio.Format{
		SampleRate: int32(c.Stream.SampleRate),
		Channels:   int32(c.Stream.Channels),
	}
}

// Usage returns the configured stream usage.
func (c *Config) Usage() device.Usage {
	return device.ParseUsage(c.Stream.Usage)
}

var (
	backends   = []string{device.BackendOto, device.BackendPortAudio, device.BackendOffline}
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Stream.SampleRate <= 0:
		return &ConfigError{Field: "stream.sample_rate", Message: "sample rate must be positive"}
	case c.Stream.Channels <= 0:
		return &ConfigError{Field: "stream.channels", Message: "channel count must be positive"}
	case !slices.Contains(backends, c.Device.Backend):
		return &ConfigError{Field: "device.backend", Message: fmt.Sprintf("unknown backend %q", c.Device.Backend)}
	case c.Device.Buffer <= 0:
		return &ConfigError{Field: "device.buffer", Message: "buffer duration must be positive"}
	case !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)):
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	case !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)):
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
