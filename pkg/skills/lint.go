package skills

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// knownFrontmatterKeys are the top-level frontmatter fields this tool
// interprets. Anything else is legal but worth flagging.
var knownFrontmatterKeys = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"compatibility": true,
	"metadata":      true,
	"allowed_tools": true,
}

// Lint runs advisory checks on a full SKILL.md document, beyond what Parse
// and Validate require. It reports human-readable warnings: a document a
// CommonMark renderer cannot process, frontmatter the goldmark meta
// extension does not recognize, unknown top-level frontmatter keys, and an
// empty body. Lint never fails a skill; callers decide what to do with the
// warnings.
func Lint(content string) []string {
	var warnings []string

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		warnings = append(warnings, fmt.Sprintf("markdown does not render: %v", err))
		return warnings
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		warnings = append(warnings, "frontmatter not recognized by CommonMark renderers")
	} else {
		unknown := make([]string, 0, len(metaData))
		for key := range metaData {
			if !knownFrontmatterKeys[key] {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			warnings = append(warnings, fmt.Sprintf("unknown frontmatter key %q", key))
		}
	}

	if _, body, err := Parse(content); err == nil && strings.TrimSpace(body) == "" {
		warnings = append(warnings, "skill body is empty")
	}

	return warnings
}

// Title returns the text of the first heading in the skill body, or "" when
// the body has none. Handy for listings where the name alone is too terse.
func (s *Skill) Title() string {
	source := []byte(s.Body)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		for i := 0; i < heading.Lines().Len(); i++ {
			segment := heading.Lines().At(i)
			sb.Write(segment.Value(source))
		}
		title = strings.TrimSpace(sb.String())
		return ast.WalkStop, nil
	})
	return title
}
