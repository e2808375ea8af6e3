package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
	"github.com/jingkaihe/skillet/pkg/sysprompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the skills section of an agent system prompt",
	Long: `Prompt renders the discovered skills into the Markdown section an agent
would receive in its system prompt: each skill's name and a description
truncated to 80 characters. With no skills the output is empty.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		collection, err := discoverCollection(ctx)
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}

		templatePath, _ := cmd.Flags().GetString("template")
		if templatePath == "" {
			fmt.Print(sysprompt.SkillsPrompt(ctx, collection))
			return
		}

		content, err := os.ReadFile(templatePath)
		if err != nil {
			presenter.Error(errors.Wrap(err, "failed to read template override"), "Failed to render prompt")
			os.Exit(1)
		}

		renderer := sysprompt.NewRendererWithTemplateOverride(sysprompt.TemplateFS, map[string]string{
			sysprompt.SkillsTemplate: string(content),
		})
		fmt.Print(skills.FormatForPrompt(ctx, collection, renderer))
	},
}

func init() {
	promptCmd.Flags().String("template", "", "Render with a custom Go template file instead of the built-in one")
}
