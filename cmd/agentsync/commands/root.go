// Package commands implements the CLI commands for agentsync.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/cmd"
	"github.com/thoreinstein/agentsync/internal/config"
	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// platformFlag holds the value of the --platform flag.
var platformFlag []string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// loadedConfig holds the configuration loaded during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringSliceVarP(&platformFlag, "platform", "p", nil,
		`target platform(s): claude, copilot, antigravity, gemini, opencode, codex (default: all)`)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	// Add version flag
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("agentsync version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "agentsync",
	Short: "Sync AI coding assistant configurations from one source of truth",
	Long: `agentsync keeps MCP server definitions, skill directories, and
instruction files consistent across AI coding assistants: Claude Code,
GitHub Copilot, Antigravity, Gemini CLI, OpenCode, and Codex CLI.

Server definitions live in one canonical store and are pushed out to
each assistant's config file in its native format. Skill directories
and instruction files are reconciled as symlinks to a single canonical
copy; anything they would displace is backed up first, never deleted.

Use the --platform flag to target specific assistants, or omit it to
sync all of them.`,
	Example: `  # Push the canonical store to every assistant
  agentsync sync

  # Pull servers from an existing assistant config
  agentsync import

  # See which assistants are installed and what they hold
  agentsync status

  # Only touch Claude and Codex
  agentsync sync --platform claude,codex`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validatePlatformFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return syncerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("AGENT_SYNC_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// validatePlatformFlag checks that all specified platforms are valid.
func validatePlatformFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// Check for config load errors first
	if configLoadErr != nil {
		return syncerrors.NewUserError(configLoadErr, "Check your config file syntax")
	}

	if loadedConfig != nil {
		if errs := config.Validate(loadedConfig); len(errs) > 0 {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			err := errors.Wrap(syncerrors.ErrInvalidConfig, strings.Join(msgs, "; "))
			return syncerrors.NewUserError(err, "Fix your agentsync config file")
		}
	}

	// If no platforms specified, that's fine - we'll sync all of them
	if len(platformFlag) == 0 {
		return nil
	}

	// Validate each specified platform
	var invalid []string
	for _, p := range platformFlag {
		if !paths.ValidPlatform(p) {
			invalid = append(invalid, p)
		}
	}

	if len(invalid) > 0 {
		err := errors.Newf("invalid platform(s): %s (valid: %s)",
			strings.Join(invalid, ", "),
			strings.Join(paths.Platforms(), ", "))
		return syncerrors.NewUserError(err, "Run 'agentsync --help' to see valid platforms")
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
