package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := FromViper()
	require.NoError(t, err)

	require.NotNil(t, cfg.Skills)
	assert.True(t, cfg.Skills.Enabled)
	assert.Empty(t, cfg.Skills.GlobalDir)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestFromViperValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log_level", "debug")
	viper.Set("log_format", "json")
	viper.Set("skills", map[string]any{
		"enabled":    true,
		"global_dir": "/srv/skills",
		"workspaces": []string{"/repo"},
		"allowed":    []string{"pdf-*"},
	})
	viper.Set("tracing", map[string]any{
		"enabled": true,
		"sampler": "ratio",
		"ratio":   0.25,
	})

	cfg, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/srv/skills", cfg.Skills.GlobalDir)
	assert.Equal(t, []string{"/repo"}, cfg.Skills.Workspaces)
	assert.Equal(t, []string{"pdf-*"}, cfg.Skills.Allowed)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "ratio", cfg.Tracing.SamplerType)
	assert.Equal(t, 0.25, cfg.Tracing.SamplerRatio)
}

func TestFromViperAppliesProfile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log_level", "info")
	viper.Set("log_format", "fmt")
	viper.Set("profiles", map[string]any{
		"ci": map[string]any{
			"log_format": "json",
			"skills": map[string]any{
				"enabled": true,
				"allowed": []string{"code-review"},
			},
		},
	})
	viper.Set("profile", "ci")

	cfg, err := FromViper()
	require.NoError(t, err)

	// Profile fields override, everything else keeps base values.
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NotNil(t, cfg.Skills)
	assert.Equal(t, []string{"code-review"}, cfg.Skills.Allowed)
}

func TestFromViperProfileMergesNestedSections(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("skills", map[string]any{
		"enabled":    true,
		"global_dir": "/srv/skills",
	})
	viper.Set("profiles", map[string]any{
		"ci": map[string]any{
			"skills": map[string]any{
				"allowed": []string{"code-review"},
			},
		},
	})
	viper.Set("profile", "ci")

	cfg, err := FromViper()
	require.NoError(t, err)

	// A profile touching one skills key leaves its siblings alone.
	require.NotNil(t, cfg.Skills)
	assert.True(t, cfg.Skills.Enabled)
	assert.Equal(t, "/srv/skills", cfg.Skills.GlobalDir)
	assert.Equal(t, []string{"code-review"}, cfg.Skills.Allowed)
}

func TestFromViperIgnoresDefaultProfile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log_format", "fmt")
	viper.Set("profiles", map[string]any{
		"default": map[string]any{"log_format": "json"},
	})
	viper.Set("profile", "default")

	cfg, err := FromViper()
	require.NoError(t, err)
	assert.Equal(t, "fmt", cfg.LogFormat)
}

func TestFromViperUnknownProfileIsNoop(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log_level", "warn")
	viper.Set("profile", "missing")

	cfg, err := FromViper()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
