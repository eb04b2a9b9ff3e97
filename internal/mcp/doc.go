// Package mcp defines the canonical MCP server model and its store file.
//
// A [Config] maps unique server names to [Server] launch specifications
// (command, args, env). The canonical file lives at <syncHome>/mcp.json as
// {"servers": {...}}, pretty-printed with 4-space indent and a trailing
// newline. Downstream assistant configs are derived from this model by the
// converters in internal/platform and merged in by internal/patch; only the
// canonical file is ever overwritten wholesale.
package mcp
