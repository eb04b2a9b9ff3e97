package platform

import (
	"encoding/json"
	"testing"

	"github.com/thoreinstein/agentsync/internal/mcp"
)

func TestMCPServersDocument(t *testing.T) {
	cfg := mcp.NewConfig()
	cfg.Servers["github"] = &mcp.Server{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "token123"},
	}
	cfg.Servers["bare"] = &mcp.Server{Command: "run"}

	data, err := json.Marshal(MCPServersDocument(cfg))
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	servers, ok := doc["mcpServers"]
	if !ok {
		t.Fatal("missing mcpServers wrapper key")
	}
	if len(servers) != 2 {
		t.Fatalf("len(servers) = %d, want 2", len(servers))
	}

	gh := servers["github"]
	if gh["command"] != "npx" {
		t.Errorf("command = %v, want npx", gh["command"])
	}
	if _, ok := gh["env"]; !ok {
		t.Error("github server should carry env")
	}

	bare := servers["bare"]
	if _, ok := bare["env"]; ok {
		t.Error("empty env must be omitted")
	}
	if args, ok := bare["args"].([]any); !ok || len(args) != 0 {
		t.Errorf("args = %v, want empty array", bare["args"])
	}
}

func TestOpenCodeDocument(t *testing.T) {
	cfg := mcp.NewConfig()
	cfg.Servers["time"] = &mcp.Server{Command: "uvx", Args: []string{"mcp-server-time"}}

	data, err := json.Marshal(OpenCodeDocument(cfg))
	if err != nil {
		t.Fatal(err)
	}

	// No wrapping key: the server name is top-level.
	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["mcpServers"]; ok {
		t.Error("OpenCode shape must not have a mcpServers wrapper")
	}
	if doc["time"]["command"] != "uvx" {
		t.Errorf("command = %v, want uvx", doc["time"]["command"])
	}
}

func TestConvert_Deterministic(t *testing.T) {
	cfg := mcp.NewConfig()
	for _, name := range []string{"zeta", "alpha", "mid", "omega"} {
		cfg.Servers[name] = &mcp.Server{
			Command: "cmd-" + name,
			Env:     map[string]string{"B_VAR": "2", "A_VAR": "1"},
		}
	}

	first, err := json.MarshalIndent(MCPServersDocument(cfg), "", "    ")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.MarshalIndent(MCPServersDocument(cfg), "", "    ")
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != string(first) {
			t.Fatal("JSON document rendering is not byte-identical across runs")
		}
		if got := CodexBlocks(cfg); got != CodexBlocks(cfg) {
			t.Fatal("Codex rendering is not byte-identical across runs")
		}
	}
}

func TestParseMCPServers_RoundTrip(t *testing.T) {
	cfg := mcp.NewConfig()
	cfg.Servers["github"] = &mcp.Server{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "token123"},
	}
	cfg.Servers["plain"] = &mcp.Server{Command: "run", Args: []string{}}

	data, err := json.Marshal(MCPServersDocument(cfg))
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseMCPServers(data)
	if err != nil {
		t.Fatalf("ParseMCPServers() error = %v", err)
	}

	for name, want := range cfg.Servers {
		s := got.Servers[name]
		if s == nil {
			t.Fatalf("server %q lost in round-trip", name)
		}
		if s.Command != want.Command {
			t.Errorf("%s: command = %q, want %q", name, s.Command, want.Command)
		}
		if len(s.Args) != len(want.Args) {
			t.Errorf("%s: len(args) = %d, want %d", name, len(s.Args), len(want.Args))
		}
		for i := range want.Args {
			if s.Args[i] != want.Args[i] {
				t.Errorf("%s: args[%d] = %q, want %q", name, i, s.Args[i], want.Args[i])
			}
		}
		if len(s.Env) != len(want.Env) {
			t.Errorf("%s: len(env) = %d, want %d", name, len(s.Env), len(want.Env))
		}
		for k, v := range want.Env {
			if s.Env[k] != v {
				t.Errorf("%s: env[%s] = %q, want %q", name, k, s.Env[k], v)
			}
		}
	}
}

func TestParseMCPServers_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "mcpServers wrapper",
			input: `{"mcpServers": {"a": {"command": "x"}}}`,
			want:  1,
		},
		{
			name:  "mcp wrapper",
			input: `{"mcp": {"a": {"command": "x"}, "b": {"command": "y"}}}`,
			want:  2,
		},
		{
			name:  "bare map",
			input: `{"a": {"command": "x"}}`,
			want:  1,
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMCPServers([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseMCPServers() error = %v", err)
			}
			if len(cfg.Servers) != tt.want {
				t.Errorf("len(Servers) = %d, want %d", len(cfg.Servers), tt.want)
			}
		})
	}

	t.Run("malformed", func(t *testing.T) {
		if _, err := ParseMCPServers([]byte("{broken")); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}

func TestTargets(t *testing.T) {
	all := Targets()
	if len(all) != 6 {
		t.Fatalf("len(Targets()) = %d, want 6", len(all))
	}

	// Claude-style targets are created on demand; patch-in-place targets are not.
	create := map[string]bool{"claude": true, "copilot": true, "antigravity": true}
	for _, target := range all {
		if target.CreateIfMissing != create[target.Name] {
			t.Errorf("%s: CreateIfMissing = %v, want %v", target.Name, target.CreateIfMissing, create[target.Name])
		}
	}

	codex, ok := Lookup("codex")
	if !ok || codex.Format != FormatTOML {
		t.Errorf("codex target = %+v, ok=%v", codex, ok)
	}
	if _, ok := Lookup("cursor"); ok {
		t.Error("Lookup(cursor) should fail")
	}
}
