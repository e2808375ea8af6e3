package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintCleanDocument(t *testing.T) {
	content := `---
name: pdf-processing
description: Extract text and tables from PDF files
license: MIT
---
# PDF Processing

Instructions here.
`

	assert.Empty(t, Lint(content))
}

func TestLintUnknownFrontmatterKey(t *testing.T) {
	content := `---
name: pdf-processing
description: Extract text from PDFs
author: docs-team
---
body
`

	warnings := Lint(content)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `unknown frontmatter key "author"`)
}

func TestLintEmptyBody(t *testing.T) {
	content := `---
name: empty-body
description: Has no instructions at all
---
`

	warnings := Lint(content)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "body is empty")
}

func TestLintLeadingWhitespaceFrontmatter(t *testing.T) {
	// Parse tolerates a padded opening fence; mainstream CommonMark
	// frontmatter extensions do not, which is exactly what Lint flags.
	content := "\n\n---\nname: padded\ndescription: Leading blank lines\n---\nbody\n"

	warnings := Lint(content)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "not recognized")
}

func TestSkillTitle(t *testing.T) {
	skill := &Skill{Body: "# PDF Processing\n\nDetails follow.\n"}
	assert.Equal(t, "PDF Processing", skill.Title())
}

func TestSkillTitleNoHeading(t *testing.T) {
	skill := &Skill{Body: "plain text without a heading\n"}
	assert.Empty(t, skill.Title())
}
