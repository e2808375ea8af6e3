package sysprompt

import "embed"

//go:embed templates/*.tmpl
var TemplateFS embed.FS

const (
	// SkillsTemplate renders the skills listing for agent system prompts.
	SkillsTemplate = "templates/skills.tmpl"
)
