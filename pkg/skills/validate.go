package skills

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxNameLength is the byte limit on skill names.
	MaxNameLength = 64
	// MaxDescriptionLength is the character limit on skill descriptions.
	MaxDescriptionLength = 1024
)

// Validate checks the metadata invariants, first violation wins:
// name non-empty, name at most MaxNameLength bytes, name restricted to
// lowercase letters, digits and hyphens, and description at most
// MaxDescriptionLength characters. A nil return means the metadata is
// acceptable for discovery.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if len(m.Name) > MaxNameLength {
		return &ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must be at most %d bytes, got %d", MaxNameLength, len(m.Name)),
		}
	}
	for _, r := range m.Name {
		if !isNameRune(r) {
			return &ValidationError{
				Field:  "name",
				Reason: fmt.Sprintf("must contain only lowercase letters, digits and hyphens, got %q", m.Name),
			}
		}
	}
	// Counted in characters so multi-byte descriptions are not penalized.
	if n := utf8.RuneCountInString(m.Description); n > MaxDescriptionLength {
		return &ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n),
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
