package skills

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter fences the YAML metadata block at the top of a
// SKILL.md document.
const frontmatterDelimiter = "---"

// Parse splits a SKILL.md document into its frontmatter metadata and
// markdown body.
//
// After ignoring leading whitespace the document must open with "---"; the
// metadata block runs to the next occurrence of "---" and decodes as YAML
// into Metadata. Everything after the closing delimiter, leading whitespace
// trimmed, is the body.
//
// A missing delimiter yields ErrMalformedDocument; a block that does not
// decode, or that omits name or description, yields a *MetadataError. On
// error the returned Metadata is always the zero value, never a partial
// decode. Parse checks only that the document is well formed: callers that
// need the naming invariants run Metadata.Validate separately, which keeps
// "unreadable" and "well-formed but invalid" distinguishable.
func Parse(content string) (Metadata, string, error) {
	var meta Metadata

	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, frontmatterDelimiter) {
		return meta, "", errors.Wrap(ErrMalformedDocument, "missing opening frontmatter delimiter")
	}

	rest := trimmed[len(frontmatterDelimiter):]
	end := strings.Index(rest, frontmatterDelimiter)
	if end < 0 {
		return meta, "", errors.Wrap(ErrMalformedDocument, "missing closing frontmatter delimiter")
	}

	block := rest[:end]
	body := strings.TrimLeftFunc(rest[end+len(frontmatterDelimiter):], unicode.IsSpace)

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Metadata{}, "", &MetadataError{Err: err}
	}
	if meta.Name == "" {
		return Metadata{}, "", &MetadataError{Err: errors.New("missing required field: name")}
	}
	if meta.Description == "" {
		return Metadata{}, "", &MetadataError{Err: errors.New("missing required field: description")}
	}

	return meta, body, nil
}
