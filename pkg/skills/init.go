package skills

import (
	"context"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jingkaihe/skillet/pkg/config"
	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/telemetry"
)

// Initialize discovers the merged skill collection according to
// configuration and CLI flags. It honors the --no-skills flag (bound to
// no_skills in viper), resolves the global root from cfg or the platform
// default, layers the configured workspace roots (current directory when
// none are set), and applies the allowlist. It returns the collection and
// whether skills are enabled at all; discovery trouble degrades to an empty
// collection rather than an error.
func Initialize(ctx context.Context, cfg *config.SkillsConfig) (map[string]*Skill, bool) {
	noSkillsFlag := viper.GetBool("no_skills")

	// skills.enabled defaults to true when the skills config is absent
	enabled := (cfg == nil || cfg.Enabled) && !noSkillsFlag
	if !enabled {
		return nil, false
	}

	globalDir := ""
	if cfg != nil {
		globalDir = cfg.GlobalDir
	}
	if globalDir == "" {
		dir, err := DefaultGlobalDir()
		if err != nil {
			logger.G(ctx).WithError(err).Debug("failed to locate global skills directory")
		} else {
			globalDir = dir
		}
	}

	workspaces := []string{"."}
	if cfg != nil && len(cfg.Workspaces) > 0 {
		workspaces = cfg.Workspaces
	}

	discovery, err := NewDiscovery()
	if err != nil {
		logger.G(ctx).WithError(err).Debug("failed to create skill discovery")
		return nil, false
	}

	var collection map[string]*Skill
	err = telemetry.WithSpan(ctx, "skills.initialize", func(ctx context.Context) error {
		var err error
		collection, err = discovery.DiscoverAll(ctx, globalDir, workspaces)
		return err
	}, attribute.Int("skills.workspaces", len(workspaces)))
	if err != nil {
		logger.G(ctx).WithError(err).Debug("skill discovery did not complete")
		return nil, false
	}

	if cfg != nil && len(cfg.Allowed) > 0 {
		before := len(collection)
		collection = FilterByAllowlist(collection, cfg.Allowed)
		telemetry.AddEvent(ctx, "skills.filtered",
			attribute.Int("skills.before", before),
			attribute.Int("skills.after", len(collection)),
		)
	}
	return collection, true
}
