package skills

import (
	"strings"

	"github.com/gobwas/glob"
)

// FilterByAllowlist keeps only skills whose name matches an allowlist entry.
// An entry containing * or ? is treated as a glob pattern ("pdf-*"); any
// other entry matches exactly. Patterns that fail to compile fall back to
// exact matching. An empty allowlist keeps the whole collection.
func FilterByAllowlist(collection map[string]*Skill, allowed []string) map[string]*Skill {
	if len(allowed) == 0 {
		return collection
	}

	exact := make(map[string]bool)
	patterns := make([]glob.Glob, 0, len(allowed))
	for _, entry := range allowed {
		if strings.ContainsAny(entry, "*?") {
			if pattern, err := glob.Compile(entry); err == nil {
				patterns = append(patterns, pattern)
				continue
			}
		}
		exact[entry] = true
	}

	filtered := make(map[string]*Skill)
	for name, skill := range collection {
		if exact[name] {
			filtered[name] = skill
			continue
		}
		for _, pattern := range patterns {
			if pattern.Match(name) {
				filtered[name] = skill
				break
			}
		}
	}
	return filtered
}
