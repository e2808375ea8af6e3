// Package config holds skillet's configuration types and their viper
// loading. Values come from config.yaml, SKILLET_* environment variables,
// and bound CLI flags, with named profiles layered on top.
package config

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the full skillet configuration.
type Config struct {
	LogLevel  string                   `mapstructure:"log_level"`
	LogFormat string                   `mapstructure:"log_format"`
	Skills    *SkillsConfig            `mapstructure:"skills"`
	Tracing   TracingConfig            `mapstructure:"tracing"`
	Profiles  map[string]ProfileConfig `mapstructure:"profiles"`
}

// SkillsConfig controls discovery. A nil SkillsConfig means defaults:
// enabled, platform global directory, current directory as the only
// workspace, no allowlist.
type SkillsConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	GlobalDir  string   `mapstructure:"global_dir"`
	Workspaces []string `mapstructure:"workspaces"`
	Allowed    []string `mapstructure:"allowed"`
}

// TracingConfig controls OpenTelemetry trace export.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	SamplerType  string  `mapstructure:"sampler"`
	SamplerRatio float64 `mapstructure:"ratio"`
}

// ProfileConfig is a partial configuration applied on top of the base when
// its profile is selected. It stays an untyped map so only the keys a
// profile actually sets override base values, nested sections included.
type ProfileConfig map[string]interface{}

// FromViper unmarshals the effective configuration and applies the active
// profile, selected with --profile or the SKILLET_PROFILE environment
// variable. The reserved profile name "default" means no profile.
func FromViper() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if cfg.Skills == nil {
		cfg.Skills = &SkillsConfig{Enabled: true}
	}

	if cfg.Profiles != nil {
		delete(cfg.Profiles, "default")
	}

	if name := activeProfile(); name != "" && cfg.Profiles != nil {
		if profile, exists := cfg.Profiles[name]; exists {
			if err := applyProfile(&cfg, profile); err != nil {
				return cfg, err
			}
		}
	}

	return cfg, nil
}

func activeProfile() string {
	profile := viper.GetString("profile")
	if profile == "default" {
		return ""
	}
	return profile
}

// applyProfile merges profile values onto cfg. ZeroFields stays false so
// keys the profile omits keep their base values.
func applyProfile(cfg *Config, profile ProfileConfig) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create profile decoder")
	}
	if err := decoder.Decode(profile); err != nil {
		return errors.Wrap(err, "failed to apply profile configuration")
	}
	return nil
}
