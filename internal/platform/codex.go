package platform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/agentsync/internal/mcp"
)

// CodexBlocks renders the canonical config as Codex TOML sections, one
// [mcp_servers.<name>] per server with a command line, an args array only
// when non-empty, and an [mcp_servers.<name>.env] subsection only when env
// is non-empty. Sections are separated by a blank line and the output always
// ends with one.
//
// The byte format is contractual (downstream Codex parses it and tests
// assert on it), so the blocks are emitted directly rather than through a
// TOML marshaler whose quoting style could drift between versions.
func CodexBlocks(cfg *mcp.Config) string {
	var b strings.Builder

	for _, name := range cfg.Names() {
		s := cfg.Servers[name]

		b.WriteString("[mcp_servers.")
		b.WriteString(tomlKey(name))
		b.WriteString("]\n")
		b.WriteString("command = ")
		b.WriteString(tomlString(s.Command))
		b.WriteString("\n")

		if len(s.Args) > 0 {
			quoted := make([]string, len(s.Args))
			for i, a := range s.Args {
				quoted[i] = tomlString(a)
			}
			b.WriteString("args = [")
			b.WriteString(strings.Join(quoted, ", "))
			b.WriteString("]\n")
		}
		b.WriteString("\n")

		if len(s.Env) > 0 {
			b.WriteString("[mcp_servers.")
			b.WriteString(tomlKey(name))
			b.WriteString(".env]\n")
			keys := make([]string, 0, len(s.Env))
			for k := range s.Env {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				b.WriteString(tomlKey(k))
				b.WriteString(" = ")
				b.WriteString(tomlString(s.Env[k]))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// codexServer is the wire shape of one [mcp_servers.<name>] section.
type codexServer struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env"`
}

// codexDocument is the subset of a Codex config.toml this tool reads.
type codexDocument struct {
	MCPServers map[string]codexServer `toml:"mcp_servers"`
}

// ParseCodex extracts the [mcp_servers.*] sections from a Codex config.toml
// into canonical form. Unrelated sections are ignored.
func ParseCodex(data []byte) (*mcp.Config, error) {
	var doc codexDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing Codex config")
	}

	cfg := mcp.NewConfig()
	for name, s := range doc.MCPServers {
		cfg.Servers[name] = &mcp.Server{
			Command: s.Command,
			Args:    s.Args,
			Env:     s.Env,
		}
	}
	return cfg, nil
}

// tomlString renders s as a TOML basic (double-quoted) string.
// strconv.Quote escapes the same characters TOML basic strings require.
func tomlString(s string) string {
	return strconv.Quote(s)
}

// tomlKey renders a table or env key, bare when possible and quoted otherwise.
func tomlKey(k string) string {
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return strconv.Quote(k)
		}
	}
	if k == "" {
		return `""`
	}
	return k
}
