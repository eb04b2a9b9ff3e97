// Package paths provides path resolution for the canonical sync home and the
// downstream AI coding assistant configuration files.
//
// The canonical store, backups, and skill/instruction layouts all derive from
// two explicit roots: the user's home directory and the project root. Both
// are threaded through as arguments rather than read from ambient globals so
// that tests can run against isolated trees. The only environment lookup is
// the AGENT_SYNC_HOME override for the sync home itself.
//
// # Downstream Platforms
//
// Each assistant keeps its MCP configuration in a different file:
//
//	| Platform    | MCP Config                      | Format        |
//	|-------------|---------------------------------|---------------|
//	| claude      | ~/.claude/.mcp.json             | mcpServers    |
//	| copilot     | ~/.copilot/mcp-config.json      | mcpServers    |
//	| antigravity | ~/.antigravity/mcp-config.json  | mcpServers    |
//	| gemini      | ~/.gemini/settings.json         | mcpServers    |
//	| opencode    | ~/.config/opencode/opencode.json| mcp           |
//	| codex       | ~/.codex/config.toml            | [mcp_servers] |
//
// # Project Layout
//
// Within a project, .agent/skills is the single real skill directory and
// AGENTS.md the single real instruction file; the per-assistant paths
// (.agents/skills, .claude/skills, CLAUDE.md, GEMINI.md) are symlinks that
// the reconciler keeps pointed at them.
package paths
