package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/internal/syncer"
)

var (
	syncProject  string
	syncNoSkills bool
)

func init() {
	syncCmd.Flags().StringVar(&syncProject, "project", "", "project directory for skill and instruction links")
	syncCmd.Flags().BoolVar(&syncNoSkills, "no-skills", false, "skip skill and instruction link reconciliation")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the canonical store to every assistant",
	Long: `Push the canonical MCP server store out to each assistant's config
file, converting to its native format. Assistants whose config file
does not exist and is never created (gemini, opencode, codex) are
skipped; a failure on one assistant never blocks the others.

With --project, the project's skill directory and instruction file are
also reconciled: .agents/skills and .claude/skills become symlinks to
.agent/skills, and CLAUDE.md and GEMINI.md become symlinks to AGENTS.md
when it exists. Real files in the way are moved into the backup store,
never deleted.`,
	Example: `  # Sync MCP servers to all assistants
  agentsync sync

  # Sync servers and reconcile links in the current project
  agentsync sync --project .

  # Only touch Codex
  agentsync sync --platform codex`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	e, err := resolveEnv()
	if err != nil {
		return err
	}

	cfg := mcp.NewStore(e.SyncHome).Load()
	s := e.newSyncer()
	w := cmd.OutOrStdout()

	results, synced := s.SyncTargets(cfg, selectedTargets())
	for _, r := range results {
		line := fmt.Sprintf("  %s %s", statusGlyph(r.Status), r.Name)
		if r.Err != nil {
			line += ": " + r.Err.Error()
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "Synced %d server(s) to %d of %d target(s)\n",
		len(cfg.Servers), synced, len(results))

	if syncProject != "" && !syncNoSkills {
		return syncProjectLinks(w, s, syncProject)
	}

	return nil
}

// syncProjectLinks reconciles the project's skill and instruction links and
// prints each outcome. A missing AGENTS.md just means there are no
// instruction links to maintain.
func syncProjectLinks(w io.Writer, s *syncer.Syncer, project string) error {
	skillResults, err := s.SyncSkills(project)
	if err != nil {
		return err
	}
	for _, r := range skillResults {
		fmt.Fprintf(w, "  %s %s\n", actionLabel(r), r.LinkPath)
	}

	if _, err := os.Stat(paths.InstructionsPath(project)); err != nil {
		return nil
	}
	instResults, err := s.SyncInstructions(project)
	if err != nil {
		return err
	}
	for _, r := range instResults {
		fmt.Fprintf(w, "  %s %s\n", actionLabel(r), r.LinkPath)
	}

	return nil
}
