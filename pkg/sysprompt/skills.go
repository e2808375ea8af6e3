package sysprompt

import (
	"context"

	"github.com/jingkaihe/skillet/pkg/skills"
)

// RenderSkillsPrompt renders the skills listing template, satisfying
// skills.Renderer.
func (r *Renderer) RenderSkillsPrompt(pctx *skills.PromptContext) (string, error) {
	return r.RenderPrompt(SkillsTemplate, pctx)
}

// SkillsPrompt renders the collection with the embedded default templates.
// It inherits FormatForPrompt's behavior of degrading to "" when rendering
// fails, so it is safe to splice the result into a prompt unconditionally.
func SkillsPrompt(ctx context.Context, collection map[string]*skills.Skill) string {
	return skills.FormatForPrompt(ctx, collection, defaultRenderer)
}
