package platform

import (
	"github.com/thoreinstein/agentsync/internal/paths"
)

// Format identifies the on-disk format of a target's MCP config.
type Format string

const (
	// FormatJSON targets hold servers under a single top-level JSON key.
	FormatJSON Format = "json"

	// FormatTOML targets hold servers as [mcp_servers.<name>] sections.
	FormatTOML Format = "toml"
)

// Top-level JSON keys owned by this tool in downstream configs.
const (
	// KeyMCPServers is the wrapper key used by Claude-style configs.
	KeyMCPServers = "mcpServers"

	// KeyMCP is the wrapper key used by OpenCode.
	KeyMCP = "mcp"
)

// Target describes one downstream assistant config file: where it lives,
// what shape it takes, and whether this tool may create it from scratch.
type Target struct {
	// Name is the platform identifier (claude, copilot, antigravity,
	// gemini, opencode, codex).
	Name string

	// Format is the config file format.
	Format Format

	// Key is the top-level JSON key this tool owns. Empty for TOML targets.
	Key string

	// CreateIfMissing controls the missing-file policy. When false, an
	// absent config file means the CLI is not installed and the target is
	// skipped; when true the file is created.
	CreateIfMissing bool
}

// targets lists every downstream target in reconciliation order.
// Claude-style targets are always considered available; the patch-in-place
// targets (gemini, opencode, codex) are skipped when their file is absent.
var targets = []Target{
	{Name: paths.PlatformClaude, Format: FormatJSON, Key: KeyMCPServers, CreateIfMissing: true},
	{Name: paths.PlatformCopilot, Format: FormatJSON, Key: KeyMCPServers, CreateIfMissing: true},
	{Name: paths.PlatformAntigravity, Format: FormatJSON, Key: KeyMCPServers, CreateIfMissing: true},
	{Name: paths.PlatformGemini, Format: FormatJSON, Key: KeyMCPServers},
	{Name: paths.PlatformOpenCode, Format: FormatJSON, Key: KeyMCP},
	{Name: paths.PlatformCodex, Format: FormatTOML},
}

// Targets returns all downstream targets in reconciliation order.
// The returned slice is a copy; callers may not mutate the table.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// Lookup returns the target with the given name, or false if unknown.
func Lookup(name string) (Target, bool) {
	for _, t := range targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// ConfigPath returns the target's MCP config file resolved against home.
func (t Target) ConfigPath(home string) string {
	return paths.MCPConfigPath(t.Name, home)
}
