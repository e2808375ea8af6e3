package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var validateCmd = &cobra.Command{
	Use:   "validate [directory]",
	Short: "Validate the skills under a directory",
	Long: `Validate scans a skills directory the same way discovery does and reports
every skill that would be skipped: unreadable files, malformed frontmatter,
invalid metadata, and names that do not match their directory. Without an
argument it validates the current workspace's .agents/skills (or the global
directory with -g).`,
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
		for _, name := range names {
			presenter.Success(name)
		}

		var result *multierror.Error
		for _, skip := range report.Skipped {
			presenter.Warning(fmt.Sprintf("%s: %s", skip.Path, skip.Reason))
			cause := skip.Err
			if cause == nil {
				cause = errors.New(skip.Reason)
			}
			result = multierror.Append(result, errors.Wrap(cause, skip.Path))
		}

		if err := result.ErrorOrNil(); err != nil {
			presenter.Error(err, fmt.Sprintf("%d skill(s) failed validation", len(report.Skipped)))
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("%d skill(s) valid under %s", len(report.Skills), root))
	},
}

func init() {
	validateCmd.Flags().BoolP("global", "g", false, "Validate the global skills directory")
}
