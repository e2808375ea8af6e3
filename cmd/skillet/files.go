package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
)

var filesCmd = &cobra.Command{
	Use:   "files [skill name] [pattern]",
	Short: "List files bundled with a skill",
	Long: `Files lists the files shipped inside a skill's directory, optionally
filtered by a doublestar pattern such as 'scripts/**/*.py'. Every match is
resolved through the same traversal checks agents use, so the output paths
are safe to hand to tools.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		collection, err := discoverCollection(cmd.Context())
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}

		name := args[0]
		skill, ok := collection[name]
		if !ok {
			presenter.Error(errors.Errorf("skill %q not found", name), "Unknown skill")
			os.Exit(1)
		}

		pattern := "**/*"
		if len(args) > 1 {
			pattern = args[1]
		}

		matches, err := doublestar.Glob(os.DirFS(skill.Path), pattern, doublestar.WithFilesOnly())
		if err != nil {
			presenter.Error(errors.Wrapf(err, "bad pattern %q", pattern), "Failed to list files")
			os.Exit(1)
		}
		sort.Strings(matches)

		relative, _ := cmd.Flags().GetBool("relative")
		for _, match := range matches {
			resolved, err := skill.ResolvePath(match)
			if err != nil {
				presenter.Warning(fmt.Sprintf("%s: %v", match, err))
				continue
			}
			if relative {
				fmt.Println(match)
			} else {
				fmt.Println(resolved)
			}
		}
	},
}

func init() {
	filesCmd.Flags().Bool("relative", false, "Print paths relative to the skill directory")
}
