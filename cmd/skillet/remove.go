package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

type RemoveConfig struct {
	Global bool
	Force  bool
}

func NewRemoveConfig() *RemoveConfig {
	return &RemoveConfig{
		Global: false,
		Force:  false,
	}
}

func getRemoveConfigFromFlags(cmd *cobra.Command) *RemoveConfig {
	config := NewRemoveConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if force, err := cmd.Flags().GetBool("force"); err == nil {
		config.Force = force
	}
	return config
}

var removeCmd = &cobra.Command{
	Use:   "remove [skill name]",
	Short: "Remove an installed skill",
	Long: `Remove deletes a skill directory from the workspace's .agents/skills (or
the global directory with -g).

Examples:
  skillet remove pdf-tools
  skillet remove pdf-tools -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getRemoveConfigFromFlags(cmd)
		removeSkill(args[0], config)
	},
}

func init() {
	removeDefaults := NewRemoveConfig()
	removeCmd.Flags().BoolP("global", "g", removeDefaults.Global, "Remove from the global skills directory instead of the workspace")
	removeCmd.Flags().BoolP("force", "f", removeDefaults.Force, "Remove without confirmation")
}

func removeSkill(name string, config *RemoveConfig) {
	root, err := resolveRoot(config.Global)
	if err != nil {
		presenter.Error(err, "Failed to determine skills directory")
		os.Exit(1)
	}

	skillDir := filepath.Join(root, name)
	if _, err := os.Stat(filepath.Join(skillDir, skills.SkillFileName)); os.IsNotExist(err) {
		location := "workspace"
		if config.Global {
			location = "global"
		}
		presenter.Error(errors.Errorf("skill '%s' not found in %s skills directory", name, location), "Skill not found")
		os.Exit(1)
	}

	if !config.Force {
		answer := presenter.Prompt(fmt.Sprintf("Remove skill '%s' from %s?", name, skillDir), "y", "N")
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			presenter.Info("Aborted")
			return
		}
	}

	unlock, err := lockedfile.MutexAt(filepath.Join(root, lockFileName)).Lock()
	if err != nil {
		presenter.Error(err, "Failed to lock skills directory")
		os.Exit(1)
	}
	defer unlock()

	if err := os.RemoveAll(skillDir); err != nil {
		presenter.Error(err, fmt.Sprintf("Failed to remove skill '%s'", name))
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Removed skill '%s' from %s", name, skillDir))
}
