package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/discover"
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/syncer"
)

var importFrom string

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", "", "file to import servers from (default: pick interactively)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Pull MCP servers from an existing assistant config",
	Long: `Import MCP server definitions into the canonical store from an
existing config file: a Claude-style mcpServers document, an OpenCode
config, or a Codex config.toml. Imported servers overwrite same-named
entries in the store; everything else is kept.

Without --from, the known assistant configs are scanned and the source
is picked interactively.`,
	Example: `  # Pick a discovered source interactively
  agentsync import

  # Import from a specific file
  agentsync import --from ~/.claude/.mcp.json`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, _ []string) error {
	e, err := resolveEnv()
	if err != nil {
		return err
	}

	path := importFrom
	if path == "" {
		path, err = pickSource(e)
		if err != nil {
			return err
		}
		if path == "" {
			// Aborted interactively; nothing to do.
			return nil
		}
	}

	store := mcp.NewStore(e.SyncHome)
	n, err := syncer.ImportServers(store, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d server(s) into %s\n", n, store.Path())
	return nil
}

// pickSource runs discovery and lets the user choose a source. Returns an
// empty path when the user aborts the finder.
func pickSource(e *env) (string, error) {
	candidates := discover.MCPSources(e.Home, e.SyncHome)
	if len(candidates) == 0 {
		return "", errors.New("no importable MCP configs found")
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			c := candidates[i]
			return fmt.Sprintf("%s (%d server(s))", c.Label, c.Count)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			c := candidates[i]
			return fmt.Sprintf("Source: %s\nPath: %s\nServers: %d", c.Label, c.Path, c.Count)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "selecting import source")
	}

	return candidates[idx].Path, nil
}
