package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var lintCmd = &cobra.Command{
	Use:   "lint [directory]",
	Short: "Report advisory problems in skill documents",
	Long: `Lint checks every discoverable skill for problems that do not block
discovery but usually indicate a mistake: frontmatter that stricter Markdown
renderers will not recognize, unknown frontmatter keys, and empty bodies.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var root string
		if len(args) > 0 {
			root = args[0]
		} else {
			global, _ := cmd.Flags().GetBool("global")
			resolved, err := resolveRoot(global)
			if err != nil {
				presenter.Error(err, "Failed to resolve skills directory")
				os.Exit(1)
			}
			root = resolved
		}

		discovery, err := skills.NewDiscovery()
		if err != nil {
			presenter.Error(err, "Failed to initialize skill discovery")
			os.Exit(1)
		}
		report, err := discovery.Scan(cmd.Context(), root)
		if err != nil {
			presenter.Error(err, "Failed to scan skills directory")
			os.Exit(1)
		}

		names := make([]string, 0, len(report.Skills))
		for name := range report.Skills {
			names = append(names, name)
		}
		sort.Strings(names)

		total := 0
		for _, name := range names {
			skill := report.Skills[name]
			content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
			if err != nil {
				presenter.Warning(fmt.Sprintf("%s: cannot re-read %s: %v", name, skills.SkillFileName, err))
				continue
			}

			warnings := skills.Lint(string(content))
			if len(warnings) == 0 {
				continue
			}
			presenter.Section(name)
			for _, warning := range warnings {
				presenter.Warning(warning)
				total++
			}
		}

		if total == 0 {
			presenter.Success(fmt.Sprintf("%d skill(s) clean under %s", len(report.Skills), root))
			return
		}
		presenter.Info(fmt.Sprintf("%d warning(s) across %d skill(s)", total, len(report.Skills)))
	},
}

func init() {
	lintCmd.Flags().BoolP("global", "g", false, "Lint the global skills directory")
}
