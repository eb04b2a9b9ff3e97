package mcp

import "sort"

// Server represents a canonical MCP server launch specification.
// The name lives in the enclosing map key, not in the server itself.
type Server struct {
	// Command is the executable invoked to start the server.
	Command string `json:"command"`

	// Args are command-line arguments passed to Command.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty"`
}

// Config is the canonical server map persisted in the store.
// Server names are unique by construction (map keys).
type Config struct {
	// Servers maps server names to their launch specifications.
	Servers map[string]*Server `json:"servers"`
}

// NewConfig creates a new Config with an initialized server map.
func NewConfig() *Config {
	return &Config{
		Servers: make(map[string]*Server),
	}
}

// Names returns all server names in sorted order. Every rendering of the
// config iterates this slice so output is byte-identical across runs.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Servers))
	for name := range c.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies every server from other into c, overwriting entries with the
// same name. Returns the number of servers added or replaced.
func (c *Config) Merge(other *Config) int {
	if other == nil {
		return 0
	}
	if c.Servers == nil {
		c.Servers = make(map[string]*Server, len(other.Servers))
	}
	n := 0
	for name, server := range other.Servers {
		c.Servers[name] = server
		n++
	}
	return n
}
