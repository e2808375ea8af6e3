package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Long:  `List all skills discovered in the global directory and the configured workspaces.`,
	Run: func(cmd *cobra.Command, args []string) {
		collection, err := discoverCollection(cmd.Context())
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			printSkillsJSON(collection)
			return
		}

		if len(collection) == 0 {
			presenter.Info("No skills found")
			return
		}

		names := make([]string, 0, len(collection))
		for name := range collection {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH\tDESCRIPTION")
		for _, name := range names {
			skill := collection[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, skill.Path, truncate(skill.Description(), 60))
		}
		w.Flush()
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Output skills as JSON")
}

func printSkillsJSON(collection map[string]*skills.Skill) {
	type entry struct {
		Name        string `json:"name"`
		Path        string `json:"path"`
		Description string `json:"description"`
	}

	entries := make([]entry, 0, len(collection))
	for name, skill := range collection {
		entries = append(entries, entry{Name: name, Path: skill.Path, Description: skill.Description()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		presenter.Error(err, "Failed to marshal skills")
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
