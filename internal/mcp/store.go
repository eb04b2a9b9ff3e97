package mcp

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// Store reads and writes the canonical MCP server file. The store file is
// exclusively owned by this tool: it is always rewritten whole, never
// patched, and an unreadable file loads as an empty config rather than an
// error (downstream targets get the opposite treatment; see internal/patch).
type Store struct {
	syncHome string
}

// NewStore creates a Store rooted at the given sync home directory.
func NewStore(syncHome string) *Store {
	return &Store{syncHome: syncHome}
}

// Path returns the store file location.
func (s *Store) Path() string {
	return paths.StorePath(s.syncHome)
}

// Load reads the canonical config. A missing or unparseable file yields an
// empty config; the next Save establishes the canonical state.
func (s *Store) Load() *Config {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return NewConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return NewConfig()
	}
	if cfg.Servers == nil {
		cfg.Servers = make(map[string]*Server)
	}
	return &cfg
}

// Save writes the canonical config whole-file: pretty-printed JSON with
// 4-space indent and a trailing newline, written atomically. The sync home
// is created on first save.
func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := paths.EnsureDir(s.syncHome, 0); err != nil {
		return errors.Wrap(err, "creating sync home")
	}
	if err := fileutil.AtomicWriteJSON(s.Path(), cfg); err != nil {
		return errors.Wrap(err, "writing canonical store")
	}
	return nil
}
