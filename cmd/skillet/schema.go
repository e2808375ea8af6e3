package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for SKILL.md frontmatter",
	Long: `Schema prints the JSON schema that SKILL.md frontmatter must conform to,
suitable for editor integration or CI validation.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := json.MarshalIndent(skills.MetadataSchema(), "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to marshal schema")
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}
