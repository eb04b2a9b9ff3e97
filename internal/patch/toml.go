package patch

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// TOML replaces every [mcp_servers.*] section in the TOML file at path with
// the freshly rendered blocks, preserving all other content verbatim. The
// transform is textual: existing sections are stripped line-wise and the new
// blocks appended after a blank line, so comments and formatting outside the
// owned sections survive untouched.
//
// A missing file returns ErrNotInstalled (Codex is only ever patched in
// place). A file that does not parse as TOML returns ErrUnparseableTarget
// before any mutation.
func TOML(path, blocks string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(syncerrors.ErrNotInstalled, path)
		}
		return errors.Wrap(err, "reading config")
	}

	// Refuse to do line surgery on a file that is not valid TOML; the
	// stripped result would be unpredictable.
	var probe any
	if err := toml.Unmarshal(data, &probe); err != nil {
		return errors.Wrapf(syncerrors.ErrUnparseableTarget, "%s: %v", path, err)
	}

	kept := stripServerSections(string(data))
	kept = strings.TrimRight(kept, " \t\n")

	var out string
	switch {
	case kept == "" && blocks == "":
		out = ""
	case kept == "":
		out = blocks
	case blocks == "":
		out = kept + "\n"
	default:
		out = kept + "\n\n" + blocks
	}

	return fileutil.AtomicWriteFile(path, []byte(out), 0o644)
}

// stripServerSections removes every mcp_servers section from content.
// A section runs from its [mcp_servers...] header to the line before the
// next header that is not itself an mcp_servers section, or end of file.
func stripServerSections(content string) string {
	lines := strings.Split(content, "\n")
	var kept []string
	skipping := false

	for _, line := range lines {
		if isHeader(line) {
			skipping = isServerHeader(line)
		}
		if !skipping {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// isHeader reports whether a line opens a TOML table or array-of-tables.
func isHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "[")
}

// isServerHeader reports whether a header line belongs to this tool:
// [mcp_servers], [mcp_servers.name], [mcp_servers.name.env], or the
// array-of-tables forms of the same.
func isServerHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimPrefix(trimmed, "[") // array of tables
	if !strings.HasPrefix(trimmed, "mcp_servers") {
		return false
	}
	rest := trimmed[len("mcp_servers"):]
	return rest == "" || rest[0] == '.' || rest[0] == ']'
}
