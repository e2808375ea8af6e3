package skills

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// workspaceSkillsDir is the skills location inside a workspace, relative to
// the workspace root.
const workspaceSkillsDir = ".agents/skills"

// DefaultGlobalDir returns the user-global skills root, under the platform
// configuration directory (for example ~/.config/skillet/skills on Linux).
func DefaultGlobalDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate user config directory")
	}
	return filepath.Join(configDir, "skillet", "skills"), nil
}

// WorkspaceDir returns the skills directory for a workspace root. Workspace
// skills take precedence over global ones with the same name.
func WorkspaceDir(root string) string {
	return filepath.Join(root, filepath.FromSlash(workspaceSkillsDir))
}
