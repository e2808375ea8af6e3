package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalTempDir avoids symlinked temp roots (macOS /tmp) so resolved
// paths compare cleanly.
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func newTestSkill(t *testing.T) *Skill {
	t.Helper()

	dir := filepath.Join(canonicalTempDir(t), "pdf-processing")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "run.sh"), []byte("#!/bin/sh\n"), 0o755))

	return &Skill{
		Metadata: Metadata{Name: "pdf-processing", Description: "Extract text from PDFs"},
		Path:     dir,
	}
}

func TestResolvePath(t *testing.T) {
	skill := newTestSkill(t)

	resolved, err := skill.ResolvePath("scripts/run.sh")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(skill.Path, "scripts", "run.sh"), resolved)
}

func TestResolvePathNonexistentTarget(t *testing.T) {
	skill := newTestSkill(t)

	// Resolution must not require the target to exist yet.
	resolved, err := skill.ResolvePath("output/report.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(skill.Path, "output", "report.txt"), resolved)
}

func TestResolvePathEmptyRelative(t *testing.T) {
	skill := newTestSkill(t)

	resolved, err := skill.ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, skill.Path, resolved)
}

func TestResolvePathRejectsTraversal(t *testing.T) {
	skill := newTestSkill(t)

	tests := []string{
		"../etc/passwd",
		"scripts/../../../etc/passwd",
		"..",
		"data..csv", // the two-dot fast-reject is deliberately broad
	}

	for _, relative := range tests {
		t.Run(relative, func(t *testing.T) {
			_, err := skill.ResolvePath(relative)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPathTraversal))
		})
	}
}

func TestResolvePathRejectsAbsolute(t *testing.T) {
	skill := newTestSkill(t)

	_, err := skill.ResolvePath("/etc/passwd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathTraversal))
}

func TestResolvePathRejectsSymlinkEscape(t *testing.T) {
	base := canonicalTempDir(t)
	skillDir := filepath.Join(base, "sneaky")
	outside := filepath.Join(base, "outside")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.MkdirAll(outside, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("secret"), 0o644))

	if err := os.Symlink(outside, filepath.Join(skillDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	skill := &Skill{
		Metadata: Metadata{Name: "sneaky", Description: "escape attempt"},
		Path:     skillDir,
	}

	_, err := skill.ResolvePath("link/secret.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathTraversal))
}
