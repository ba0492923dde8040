// Package config merges flags, environment variables and an optional .env
// file into the settings that control how emailcheck logs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mbland/emailcheck/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key to form its environment variable name,
// e.g. EMAILCHECK_LOG_LEVEL.
const EnvPrefix = "EMAILCHECK"

const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagNoColor   = "no-color"
)

// Config holds the settings for one run.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	NoColor   bool   `mapstructure:"no_color"`
}

// LoggingOptions returns the logging.Options described by c.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level: c.LogLevel, Format: c.LogFormat, NoColor: c.NoColor,
	}
}

// flagKeys maps each flag name to its configuration key.
var flagKeys = map[string]string{
	FlagLogLevel:  "log_level",
	FlagLogFormat: "log_format",
	FlagNoColor:   "no_color",
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(
		FlagLogLevel, logging.DefaultLevel.String(),
		"minimum level to log: verbose, debug, info, warn or error",
	)
	flags.String(
		FlagLogFormat, logging.FormatConsole,
		"log encoding: console or json",
	)
	flags.Bool(FlagNoColor, false, "disable colored console log levels")
}

// Load merges defaults, .env files, environment variables and explicitly set
// flags into a Config. Precedence, highest first: flags > env > .env >
// defaults.
//
// envFiles defaults to ".env" in the current directory. Missing files are
// ignored. Values already present in the environment are never overwritten by
// a .env file.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil &&
		!errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", logging.DefaultLevel.String())
	v.SetDefault("log_format", logging.FormatConsole)
	v.SetDefault("no_color", false)

	for name, key := range flagKeys {
		_ = v.BindEnv(key)
		if f := flags.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if !logging.IsValidFormat(cfg.LogFormat) {
		const errFmt = "invalid log format %q: must be one of: %s"
		validFormats := strings.Join(logging.ValidFormats, ", ")
		return nil, fmt.Errorf(errFmt, cfg.LogFormat, validFormats)
	}
	return &cfg, nil
}
