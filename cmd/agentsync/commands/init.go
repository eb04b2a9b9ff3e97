package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/config"
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the sync home and configuration",
	Long: `Bootstrap agentsync: create the sync home directory with an empty
canonical store, and write a default configuration file under the XDG
config home.

Existing files are left alone unless --force is given; --force only
rewrites the configuration file, never the canonical store.`,
	Example: `  # First-time setup
  agentsync init

  # Rewrite the config file with defaults
  agentsync init --force`,
	RunE: runInit,
}

// fileConfig is the configuration file structure written by init.
type fileConfig struct {
	Version        int    `yaml:"version"`
	ConflictPolicy string `yaml:"conflict_policy"`
}

func runInit(cmd *cobra.Command, _ []string) error {
	e, err := resolveEnv()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	// Canonical store: create only when absent, its content is user data.
	store := mcp.NewStore(e.SyncHome)
	if _, err := os.Stat(store.Path()); err == nil {
		fmt.Fprintf(w, "Canonical store already exists at %s\n", store.Path())
	} else {
		if err := store.Save(mcp.NewConfig()); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", store.Path())
	}

	configPath := filepath.Join(paths.ConfigHome(), config.AppName, "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	err = fileutil.AtomicWriteYAML(configPath, &fileConfig{
		Version:        1,
		ConflictPolicy: config.PolicyBackup,
	})
	if err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
