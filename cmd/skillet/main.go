// Command skillet discovers, validates, and packages agent skills, and
// renders them for injection into agent system prompts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillet/pkg/config"
	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/skillet")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("skills.enabled", true)
}

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "Manage agent skills",
	Long: `Skillet discovers, validates, and packages agent skills: directories with a
SKILL.md file whose YAML frontmatter describes what the skill does. Skills
live in a global directory and in per-workspace .agents/skills directories,
with workspace skills taking precedence over global ones of the same name.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging()
		presenter.SetQuiet(viper.GetBool("quiet"))

		shutdown, err := initTracing(cmd.Context())
		if err != nil {
			logger.G(cmd.Context()).WithError(err).Warn("failed to initialize tracing")
			return
		}
		tracingShutdown = shutdown
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func setupLogging() {
	logger.SetLogOutput(os.Stderr)
	logger.SetLogFormat(viper.GetString("log_format"))
	if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
		presenter.Warning(fmt.Sprintf("Unknown log level %q, keeping the default", viper.GetString("log_level")))
	}
}

// discoverCollection loads the effective configuration and discovers the
// merged skill collection most commands operate on.
func discoverCollection(ctx context.Context) (map[string]*skills.Skill, error) {
	cfg, err := config.FromViper()
	if err != nil {
		return nil, err
	}

	collection, enabled := skills.Initialize(ctx, cfg.Skills)
	if !enabled {
		return map[string]*skills.Skill{}, nil
	}
	return collection, nil
}

// resolveRoot returns the skills root that install-style commands (add,
// remove, new, validate, lint) operate on: the configured global directory
// with -g, the current workspace's .agents/skills otherwise.
func resolveRoot(global bool) (string, error) {
	if global {
		cfg, err := config.FromViper()
		if err == nil && cfg.Skills != nil && cfg.Skills.GlobalDir != "" {
			return cfg.Skills.GlobalDir, nil
		}
		return skills.DefaultGlobalDir()
	}
	return skills.WorkspaceDir("."), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().String("profile", "default", "Configuration profile to apply")
	rootCmd.PersistentFlags().Bool("no-skills", false, "Disable skill discovery")
	rootCmd.PersistentFlags().String("global-dir", "", "Override the global skills directory")
	rootCmd.PersistentFlags().StringSlice("workspace", nil, "Workspace roots to scan for .agents/skills (repeatable)")

	// Bind flags to viper
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("no_skills", rootCmd.PersistentFlags().Lookup("no-skills"))
	viper.BindPFlag("skills.global_dir", rootCmd.PersistentFlags().Lookup("global-dir"))
	viper.BindPFlag("skills.workspaces", rootCmd.PersistentFlags().Lookup("workspace"))

	// Subcommands
	rootCmd.AddCommand(withTracing(listCmd))
	rootCmd.AddCommand(withTracing(showCmd))
	rootCmd.AddCommand(withTracing(validateCmd))
	rootCmd.AddCommand(withTracing(lintCmd))
	rootCmd.AddCommand(withTracing(promptCmd))
	rootCmd.AddCommand(withTracing(filesCmd))
	rootCmd.AddCommand(withTracing(pathCmd))
	rootCmd.AddCommand(withTracing(newCmd))
	rootCmd.AddCommand(withTracing(addCmd))
	rootCmd.AddCommand(withTracing(removeCmd))
	rootCmd.AddCommand(withTracing(schemaCmd))
	rootCmd.AddCommand(withTracing(mcpCmd))
	rootCmd.AddCommand(versionCmd)

	err := rootCmd.ExecuteContext(ctx)
	shutdownTracing()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
