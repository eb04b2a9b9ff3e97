package platform

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/agentsync/internal/mcp"
)

// wireServer is the downstream JSON shape shared by every JSON target:
// {command, args, env?} with env omitted when empty. Args is always present,
// normalized to an empty array rather than null.
type wireServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

func toWire(s *mcp.Server) *wireServer {
	args := s.Args
	if args == nil {
		args = []string{}
	}
	w := &wireServer{
		Command: s.Command,
		Args:    args,
	}
	if len(s.Env) > 0 {
		w.Env = s.Env
	}
	return w
}

func wireMap(cfg *mcp.Config) map[string]*wireServer {
	servers := make(map[string]*wireServer, len(cfg.Servers))
	for name, s := range cfg.Servers {
		servers[name] = toWire(s)
	}
	return servers
}

// MCPServersDocument converts the canonical config to the Claude-style shape
// used by claude, copilot, antigravity, and gemini:
//
//	{"mcpServers": {"name": {command, args, env?}}}
//
// encoding/json sorts map keys, so rendering is byte-identical across runs.
func MCPServersDocument(cfg *mcp.Config) map[string]any {
	return map[string]any{KeyMCPServers: wireMap(cfg)}
}

// OpenCodeDocument converts the canonical config to OpenCode's shape: the
// bare server map that lives under the "mcp" key of opencode.json.
func OpenCodeDocument(cfg *mcp.Config) map[string]*wireServer {
	return wireMap(cfg)
}

// Document returns the value to patch under t.Key for a JSON target.
func (t Target) Document(cfg *mcp.Config) any {
	if t.Key == KeyMCP {
		return OpenCodeDocument(cfg)
	}
	return wireMap(cfg)
}

// ParseMCPServers parses a JSON server document in any of the shapes this
// tool reads: {"mcpServers": {...}}, {"mcp": {...}}, or a bare server map.
// Used when importing a discovered source into the canonical store.
func ParseMCPServers(data []byte) (*mcp.Config, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing server document")
	}

	raw := data
	if wrapped, ok := doc[KeyMCPServers]; ok {
		raw = wrapped
	} else if wrapped, ok := doc[KeyMCP]; ok {
		raw = wrapped
	}

	var servers map[string]*wireServer
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, errors.Wrap(err, "parsing server map")
	}

	cfg := mcp.NewConfig()
	for name, w := range servers {
		if w == nil {
			continue
		}
		cfg.Servers[name] = &mcp.Server{
			Command: w.Command,
			Args:    w.Args,
			Env:     w.Env,
		}
	}
	return cfg, nil
}
