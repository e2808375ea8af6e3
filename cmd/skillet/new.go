package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

// skillScaffold is the SKILL.md a fresh skill starts from. The description
// is emitted as a double-quoted YAML scalar so punctuation cannot break the
// frontmatter.
const skillScaffold = `---
name: {{ .Name }}
description: {{ printf "%q" .Description }}
---

# {{ .Name }}

## Instructions

1. Replace this with step-by-step guidance for the agent.
2. Reference bundled files with paths relative to this directory.
`

var newCmd = &cobra.Command{
	Use:   "new [skill name]",
	Short: "Scaffold a new skill",
	Long: `New creates a skill directory with a starter SKILL.md in the current
workspace's .agents/skills (or the global directory with -g). Supporting
files conventionally live in scripts/, references/, and assets/ next to
SKILL.md.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		description, _ := cmd.Flags().GetString("description")
		global, _ := cmd.Flags().GetBool("global")
		force, _ := cmd.Flags().GetBool("force")

		metadata := skills.Metadata{Name: name, Description: description}
		if err := metadata.Validate(); err != nil {
			presenter.Error(err, "Invalid skill")
			os.Exit(1)
		}

		root, err := resolveRoot(global)
		if err != nil {
			presenter.Error(err, "Failed to resolve skills directory")
			os.Exit(1)
		}

		dir := filepath.Join(root, name)
		if _, err := os.Stat(dir); err == nil && !force {
			presenter.Error(errors.Errorf("%s already exists", dir), "Skill already exists (use --force to overwrite)")
			os.Exit(1)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			presenter.Error(err, "Failed to create skill directory")
			os.Exit(1)
		}

		var content strings.Builder
		tmpl := template.Must(template.New("skill").Parse(skillScaffold))
		if err := tmpl.Execute(&content, metadata); err != nil {
			presenter.Error(err, "Failed to render skill scaffold")
			os.Exit(1)
		}

		target := filepath.Join(dir, skills.SkillFileName)
		if err := os.WriteFile(target, []byte(content.String()), 0o644); err != nil {
			presenter.Error(err, "Failed to write skill file")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Created %s", target))
	},
}

func init() {
	newCmd.Flags().StringP("description", "d", "Describe what this skill does and when to use it.", "Skill description for the frontmatter")
	newCmd.Flags().BoolP("global", "g", false, "Create the skill in the global directory")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing skill directory")
}
