package skills

import (
	"context"
	"sort"

	"github.com/jingkaihe/skillet/pkg/logger"
)

const (
	// maxSummaryLength is the character budget for a description in the
	// prompt listing.
	maxSummaryLength = 80
	// summaryKeepLength is how many characters survive truncation before
	// the ellipsis marker.
	summaryKeepLength = 77

	summaryEllipsis = "..."
)

// Summary is one line of the prompt-facing skill listing.
type Summary struct {
	Name        string
	Description string
}

// Summarize projects a collection into a deterministic listing: entries
// sorted by name, descriptions capped at 80 characters with over-long ones
// cut to 77 plus "...". Lengths count characters, not bytes, so multi-byte
// descriptions are never split mid-rune.
func Summarize(collection map[string]*Skill) []Summary {
	names := make([]string, 0, len(collection))
	for name := range collection {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, Summary{
			Name:        name,
			Description: truncateDescription(collection[name].Description()),
		})
	}
	return summaries
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= maxSummaryLength {
		return description
	}
	return string(runes[:summaryKeepLength]) + summaryEllipsis
}

// PromptContext is the data handed to a Renderer. HasSkills lets templates
// emit alternative guidance when no skills are installed.
type PromptContext struct {
	HasSkills bool
	Skills    []Summary
}

// Renderer turns a summarized collection into prompt text. The sysprompt
// package provides the template-backed implementation.
type Renderer interface {
	RenderSkillsPrompt(pctx *PromptContext) (string, error)
}

// FormatForPrompt renders the collection into the text injected into an
// agent system prompt. Render failures degrade to an empty string with a
// warning: the skills listing is a best-effort augmentation and must never
// take a prompt down with it.
func FormatForPrompt(ctx context.Context, collection map[string]*Skill, renderer Renderer) string {
	summaries := Summarize(collection)
	prompt, err := renderer.RenderSkillsPrompt(&PromptContext{
		HasSkills: len(summaries) > 0,
		Skills:    summaries,
	})
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to render skills prompt")
		return ""
	}
	return prompt
}
