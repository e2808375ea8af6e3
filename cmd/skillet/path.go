package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
)

var pathCmd = &cobra.Command{
	Use:   "path [skill name] [relative path]",
	Short: "Resolve a path inside a skill directory",
	Long: `Path resolves a relative path against a skill's directory and prints the
absolute result. Paths that would escape the skill directory, through parent
references, absolute paths, or symlinks, are rejected.`,
	Args: cobra.ExactArgs(2),
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

		resolved, err := skill.ResolvePath(args[1])
		if err != nil {
			presenter.Error(err, "Failed to resolve path")
			os.Exit(1)
		}
		fmt.Println(resolved)
	},
}
