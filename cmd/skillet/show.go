package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var showCmd = &cobra.Command{
	Use:   "show [skill name]",
	Short: "Show a skill's metadata and instructions",
	Args:  cobra.ExactArgs(1),
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

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			printSkillJSON(skill)
			return
		}

		presenter.Section(skill.Name())
		if title := skill.Title(); title != "" {
			presenter.Info(fmt.Sprintf("Title:       %s", title))
		}
		presenter.Info(fmt.Sprintf("Description: %s", skill.Description()))
		presenter.Info(fmt.Sprintf("Path:        %s", skill.Path))
		if skill.Metadata.License != "" {
			presenter.Info(fmt.Sprintf("License:     %s", skill.Metadata.License))
		}
		if skill.Metadata.Compatibility != "" {
			presenter.Info(fmt.Sprintf("Compatible:  %s", skill.Metadata.Compatibility))
		}
		if skill.Metadata.AllowedTools != "" {
			presenter.Info(fmt.Sprintf("Tools:       %s", skill.Metadata.AllowedTools))
		}
		keys := make([]string, 0, len(skill.Metadata.Metadata))
		for key := range skill.Metadata.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			presenter.Info(fmt.Sprintf("%s: %s", key, skill.Metadata.Metadata[key]))
		}
		presenter.Separator()
		fmt.Println(skill.Body)
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "Output the skill as JSON")
}

func printSkillJSON(skill *skills.Skill) {
	out, err := json.MarshalIndent(struct {
		Metadata skills.Metadata `json:"metadata"`
		Path     string          `json:"path"`
		Body     string          `json:"body"`
	}{skill.Metadata, skill.Path, skill.Body}, "", "  ")
	if err != nil {
		presenter.Error(err, "Failed to marshal skill")
		os.Exit(1)
	}
	fmt.Println(string(out))
}
