package skills

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedDocument reports a SKILL.md without a recognizable
	// frontmatter block: the opening or closing "---" delimiter is missing.
	ErrMalformedDocument = errors.New("malformed skill document")

	// ErrPathTraversal reports an attempt to resolve a path that would
	// escape its skill directory.
	ErrPathTraversal = errors.New("path traversal not allowed")
)

// MetadataError reports a frontmatter block that was located but could not
// be decoded into Metadata, or that omits a required field. It wraps the
// underlying decode error so callers can still reach YAML details.
type MetadataError struct {
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid skill metadata: %v", e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// ValidationError reports the first metadata invariant a skill violates.
// Field names the offending frontmatter field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid skill %s: %s", e.Field, e.Reason)
}
