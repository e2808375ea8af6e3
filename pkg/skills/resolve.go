package skills

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ResolvePath resolves a path relative to the skill directory and guarantees
// the result stays inside it. It is the only sanctioned way to turn a
// skill-relative reference (from allowed_tools, skill instructions, or user
// input) into a filesystem path.
//
// Inputs containing ".." anywhere and absolute inputs are rejected before
// touching the filesystem. The joined path is then canonicalized through
// filepath.EvalSymlinks, so a symlink inside the skill pointing elsewhere is
// caught too; a target that does not exist yet falls back to the plain join.
// The containment check against the canonicalized skill directory is the
// authoritative one. Every rejection wraps ErrPathTraversal.
func (s *Skill) ResolvePath(relative string) (string, error) {
	if strings.Contains(relative, "..") {
		return "", errors.Wrapf(ErrPathTraversal, "parent directory reference in %q", relative)
	}
	if filepath.IsAbs(relative) {
		return "", errors.Wrapf(ErrPathTraversal, "absolute path %q", relative)
	}

	resolved := filepath.Join(s.Path, relative)
	canonical, err := filepath.EvalSymlinks(resolved)
	if err != nil {
		canonical = resolved
	}

	root, err := filepath.EvalSymlinks(s.Path)
	if err != nil {
		root = s.Path
	}

	if !withinDir(root, canonical) {
		return "", errors.Wrapf(ErrPathTraversal, "path %q escapes the skill directory", relative)
	}
	return canonical, nil
}

// withinDir reports whether path is dir itself or sits below it, comparing
// whole components rather than raw string prefixes so "/a/bc" never passes
// for root "/a/b".
func withinDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
