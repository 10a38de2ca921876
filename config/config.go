// Package config holds the settings shared by the typo commands, unmarshalled
// from viper (settings file, TYPO_ environment variables and bound flags).
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/ezrec/typo/batch"
)

// ENV_PREFIX is the environment variable prefix, as in TYPO_BATCH_CEILING.
const ENV_PREFIX = "TYPO"

// LogConfig selects the logger sinks.
type LogConfig struct {
	// slog level name: debug, info, warn or error
	Level string `mapstructure:"level"`

	// optional path of a JSON log file, in addition to stderr
	File string `mapstructure:"file"`

	// also log to the systemd journal
	Journal bool `mapstructure:"journal"`
}

// BatchConfig sizes the batched interpreter.
type BatchConfig struct {
	batch.Config `mapstructure:",squash"`

	// number of concurrent lane ranges, 0 for one per CPU
	Workers int `mapstructure:"workers"`
}

// MetricsConfig is for the prometheus endpoint.
type MetricsConfig struct {
	// listen address of /metrics, empty to disable
	Addr string `mapstructure:"addr"`
}

// Config is the root-level settings struct.
type Config struct {
	Verbose bool          `mapstructure:"verbose"`
	Log     LogConfig     `mapstructure:"log"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SetDefaults registers every key with its default value, which also makes
// the key visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := batch.DefaultConfig()

	v.SetDefault("settings", "")
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.journal", false)
	v.SetDefault("batch.floor", def.Floor)
	v.SetDefault("batch.ceiling", def.Ceiling)
	v.SetDefault("batch.fragments", def.Fragments)
	v.SetDefault("batch.workers", 0)
	v.SetDefault("metrics.addr", "")
}

// Load reads the settings file named by the "settings" key, if any, and
// returns the merged settings.
func Load(v *viper.Viper) (cfg Config, err error) {
	SetDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); len(settings) != 0 {
		v.SetConfigFile(settings)
		err = v.ReadInConfig()
		if err != nil {
			err = ErrSettings{Path: settings, Err: err}
			return
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the settings for consistency.
func (cfg Config) Validate() (err error) {
	var errs []error

	if cfg.Batch.Floor < 0 || cfg.Batch.Ceiling < 0 || cfg.Batch.Fragments < 0 || cfg.Batch.Workers < 0 {
		errs = append(errs, ErrNegative)
	}
	if cfg.Batch.Floor > 0 && cfg.Batch.Ceiling > 0 && cfg.Batch.Floor > cfg.Batch.Ceiling {
		errs = append(errs, ErrFloorCeiling)
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ErrLevel(cfg.Log.Level))
	}

	err = errors.Join(errs...)
	return
}
