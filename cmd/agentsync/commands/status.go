package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/discover"
	"github.com/thoreinstein/agentsync/internal/mcp"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show assistant detection and server counts",
	Long: `Show which assistants are installed, where their config files live,
and how many MCP servers each one currently defines, alongside the
canonical store.

An assistant whose config file this tool creates on demand (claude,
copilot, antigravity) always counts as installed; the others are
installed only when their config file exists.`,
	Example: `  # Human-readable overview
  agentsync status

  # Machine-readable output for scripting
  agentsync status --json`,
	RunE: runStatus,
}

// targetStatus is one row of status output.
type targetStatus struct {
	Name      string `json:"name"`
	Installed bool   `json:"installed"`
	Path      string `json:"path"`
	Servers   int    `json:"servers"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	e, err := resolveEnv()
	if err != nil {
		return err
	}

	store := mcp.NewStore(e.SyncHome)
	canonical := store.Load()
	candidates := discover.MCPSources(e.Home, e.SyncHome)

	rows := make([]targetStatus, 0, len(selectedTargets()))
	for _, t := range selectedTargets() {
		row := targetStatus{
			Name:      t.Name,
			Installed: t.Installed(e.Home),
			Path:      t.ConfigPath(e.Home),
		}
		for _, c := range candidates {
			if c.Label == t.Name {
				row.Servers = c.Count
			}
		}
		rows = append(rows, row)
	}

	w := cmd.OutOrStdout()
	if statusJSON {
		return outputStatusJSON(w, store.Path(), len(canonical.Servers), rows)
	}
	return outputStatusTable(w, store.Path(), len(canonical.Servers), rows)
}

func outputStatusJSON(w io.Writer, storePath string, storeCount int, rows []targetStatus) error {
	doc := struct {
		Store struct {
			Path    string `json:"path"`
			Servers int    `json:"servers"`
		} `json:"store"`
		Targets []targetStatus `json:"targets"`
	}{Targets: rows}
	doc.Store.Path = storePath
	doc.Store.Servers = storeCount

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func outputStatusTable(w io.Writer, storePath string, storeCount int, rows []targetStatus) error {
	fmt.Fprintf(w, "Canonical store: %s (%d server(s))\n\n", storePath, storeCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tINSTALLED\tSERVERS\tPATH")
	for _, row := range rows {
		installed := color.GreenString("yes")
		if !row.Installed {
			installed = color.New(color.FgHiBlack).Sprint("no")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", row.Name, installed, row.Servers, row.Path)
	}
	return tw.Flush()
}
