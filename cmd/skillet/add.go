package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

// lockFileName serializes concurrent installs into the same skills root.
const lockFileName = ".skillet.lock"

type AddConfig struct {
	Global bool
	Dir    string
	Force  bool
}

func NewAddConfig() *AddConfig {
	return &AddConfig{
		Global: false,
		Dir:    "",
		Force:  false,
	}
}

func getAddConfigFromFlags(cmd *cobra.Command) *AddConfig {
	config := NewAddConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if dir, err := cmd.Flags().GetString("dir"); err == nil {
		config.Dir = dir
	}
	if force, err := cmd.Flags().GetBool("force"); err == nil {
		config.Force = force
	}
	return config
}

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Install skills from a local directory",
	Long: `Add installs skills into the workspace's .agents/skills (or the global
directory with -g). The path may be a single skill directory or a tree
containing several; every candidate is parsed and validated before it is
copied, and each skill is installed under its frontmatter name.

Examples:
  skillet add ./my-skill
  skillet add ~/src/skills --dir pdf-tools
  skillet add ~/src/skills -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getAddConfigFromFlags(cmd)
		addSkills(args[0], config)
	},
}

func init() {
	addDefaults := NewAddConfig()
	addCmd.Flags().BoolP("global", "g", addDefaults.Global, "Install to the global skills directory instead of the workspace")
	addCmd.Flags().StringP("dir", "d", addDefaults.Dir, "Path to a specific skill directory within the source tree")
	addCmd.Flags().BoolP("force", "f", addDefaults.Force, "Overwrite skills that are already installed")
}

func addSkills(source string, config *AddConfig) {
	info, err := os.Stat(source)
	if err != nil {
		presenter.Error(errors.Wrap(err, "cannot read source"), "Invalid source path")
		os.Exit(1)
	}
	if !info.IsDir() {
		presenter.Error(errors.Errorf("%s is not a directory", source), "Invalid source path")
		os.Exit(1)
	}

	root, err := resolveRoot(config.Global)
	if err != nil {
		presenter.Error(err, "Failed to determine skills directory")
		os.Exit(1)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		presenter.Error(err, "Failed to create skills directory")
		os.Exit(1)
	}

	var skillDirs []string
	if config.Dir != "" {
		targetPath := filepath.Join(source, config.Dir)
		if _, err := os.Stat(filepath.Join(targetPath, skills.SkillFileName)); os.IsNotExist(err) {
			presenter.Error(errors.Errorf("no %s found at %s", skills.SkillFileName, config.Dir), "Invalid skill path")
			os.Exit(1)
		}
		skillDirs = []string{targetPath}
	} else if _, err := os.Stat(filepath.Join(source, skills.SkillFileName)); err == nil {
		skillDirs = []string{source}
	} else {
		skillDirs, err = findSkillDirs(source)
		if err != nil {
			presenter.Error(err, "Failed to find skills in source tree")
			os.Exit(1)
		}
	}

	if len(skillDirs) == 0 {
		presenter.Warning("No skills found in the source tree")
		return
	}

	unlock, err := lockedfile.MutexAt(filepath.Join(root, lockFileName)).Lock()
	if err != nil {
		presenter.Error(err, "Failed to lock skills directory")
		os.Exit(1)
	}
	defer unlock()

	installed := 0
	for _, dir := range skillDirs {
		metadata, err := loadSkillMetadata(dir)
		if err != nil {
			presenter.Warning(fmt.Sprintf("Skipping %s: %v", dir, err))
			continue
		}

		destDir := filepath.Join(root, metadata.Name)
		if _, err := os.Stat(destDir); err == nil {
			if !config.Force {
				presenter.Warning(fmt.Sprintf("Skill '%s' already exists, skipping (use --force to overwrite)", metadata.Name))
				continue
			}
			if err := os.RemoveAll(destDir); err != nil {
				presenter.Error(err, fmt.Sprintf("Failed to replace skill '%s'", metadata.Name))
				continue
			}
		}

		if err := copyDir(dir, destDir); err != nil {
			presenter.Error(err, fmt.Sprintf("Failed to install skill '%s'", metadata.Name))
			continue
		}

		if filepath.Base(dir) != metadata.Name {
			presenter.Info(fmt.Sprintf("Installed under frontmatter name '%s' (source directory was '%s')", metadata.Name, filepath.Base(dir)))
		}
		installed++
		presenter.Success(fmt.Sprintf("Installed skill '%s' to %s", metadata.Name, destDir))
	}

	if installed > 0 {
		presenter.Info(fmt.Sprintf("Successfully installed %d skill(s)", installed))
	}
}

// loadSkillMetadata parses and validates the SKILL.md in dir, so broken
// skills are rejected before anything is copied.
func loadSkillMetadata(dir string) (skills.Metadata, error) {
	content, err := os.ReadFile(filepath.Join(dir, skills.SkillFileName))
	if err != nil {
		return skills.Metadata{}, errors.Wrap(err, "cannot read skill file")
	}

	metadata, _, err := skills.Parse(string(content))
	if err != nil {
		return skills.Metadata{}, err
	}
	if err := metadata.Validate(); err != nil {
		return skills.Metadata{}, err
	}
	return metadata, nil
}

func findSkillDirs(root string) ([]string, error) {
	var skillDirs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && (info.Name() == ".git" || info.Name() == "node_modules") {
			return filepath.SkipDir
		}

		if !info.IsDir() && info.Name() == skills.SkillFileName {
			skillDirs = append(skillDirs, filepath.Dir(path))
		}

		return nil
	})

	return skillDirs, err
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
