package skills

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingkaihe/skillet/pkg/config"
)

func TestInitialize(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	globalDir := t.TempDir()
	writeSkill(t, globalDir, "pdf-processing", `---
name: pdf-processing
description: Extract text from PDFs
---
body
`)
	workspace := t.TempDir()
	writeSkill(t, WorkspaceDir(workspace), "code-review", `---
name: code-review
description: Review code for correctness
---
body
`)

	cfg := &config.SkillsConfig{
		Enabled:    true,
		GlobalDir:  globalDir,
		Workspaces: []string{workspace},
	}

	collection, enabled := Initialize(context.Background(), cfg)
	require.True(t, enabled)
	assert.Len(t, collection, 2)
	assert.Contains(t, collection, "pdf-processing")
	assert.Contains(t, collection, "code-review")
}

func TestInitializeDisabledByConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	collection, enabled := Initialize(context.Background(), &config.SkillsConfig{Enabled: false})
	assert.False(t, enabled)
	assert.Nil(t, collection)
}

func TestInitializeDisabledByFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("no_skills", true)

	collection, enabled := Initialize(context.Background(), &config.SkillsConfig{Enabled: true})
	assert.False(t, enabled)
	assert.Nil(t, collection)
}

func TestInitializeAppliesAllowlist(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	globalDir := t.TempDir()
	writeSkill(t, globalDir, "pdf-processing", `---
name: pdf-processing
description: Extract text from PDFs
---
body
`)
	writeSkill(t, globalDir, "code-review", `---
name: code-review
description: Review code for correctness
---
body
`)

	cfg := &config.SkillsConfig{
		Enabled:   true,
		GlobalDir: globalDir,
		// Point the workspace somewhere without a skills directory so only
		// the global collection is in play.
		Workspaces: []string{t.TempDir()},
		Allowed:    []string{"pdf-*"},
	}

	collection, enabled := Initialize(context.Background(), cfg)
	require.True(t, enabled)
	assert.Len(t, collection, 1)
	assert.Contains(t, collection, "pdf-processing")
}
