package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByAllowlist(t *testing.T) {
	collection := map[string]*Skill{
		"pdf-processing": mkSkill("pdf-processing", "pdf"),
		"pdf-forms":      mkSkill("pdf-forms", "forms"),
		"code-review":    mkSkill("code-review", "review"),
	}

	t.Run("empty allowlist keeps everything", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, nil)
		assert.Len(t, filtered, 3)
	})

	t.Run("exact names", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, []string{"code-review"})
		assert.Len(t, filtered, 1)
		assert.Contains(t, filtered, "code-review")
	})

	t.Run("glob pattern", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, []string{"pdf-*"})
		assert.Len(t, filtered, 2)
		assert.Contains(t, filtered, "pdf-processing")
		assert.Contains(t, filtered, "pdf-forms")
	})

	t.Run("mixed exact and glob", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, []string{"code-review", "pdf-f*"})
		assert.Len(t, filtered, 2)
		assert.Contains(t, filtered, "code-review")
		assert.Contains(t, filtered, "pdf-forms")
	})

	t.Run("no matches", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, []string{"nothing-here"})
		assert.Empty(t, filtered)
	})

	t.Run("question mark pattern", func(t *testing.T) {
		filtered := FilterByAllowlist(collection, []string{"pdf-form?"})
		assert.Len(t, filtered, 1)
		assert.Contains(t, filtered, "pdf-forms")
	})
}
