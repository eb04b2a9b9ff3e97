// Package platform describes the downstream assistant targets and converts
// the canonical MCP model to each target's wire shape.
//
// A [Target] bundles a platform's config location, format, owned JSON key,
// and missing-file policy. The converters are pure: [MCPServersDocument] and
// [OpenCodeDocument] produce the JSON shapes, [CodexBlocks] renders the TOML
// sections, and [ParseMCPServers]/[ParseCodex] read them back for import and
// discovery. All output is deterministic — byte-identical for a given
// canonical config regardless of map iteration order.
package platform
