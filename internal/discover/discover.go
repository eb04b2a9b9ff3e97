// Package discover scans well-known locations for MCP server definitions,
// skill directories, and instruction files that could seed or extend the
// canonical store. Every scan is read-only and best-effort: sources that are
// absent, unreadable, or unparseable are omitted from the results, never
// surfaced as errors.
package discover

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/internal/platform"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
	"github.com/thoreinstein/agentsync/pkg/frontmatter"
)

// Candidate is one discovered source, ready to present for selection.
type Candidate struct {
	// Label is the human-readable source name (platform name, directory
	// label, or file name).
	Label string

	// Path is the absolute file or directory path.
	Path string

	// Count is scan-dependent: server count for MCP sources, skill count
	// for skill directories, byte size for instruction files.
	Count int
}

// MCPSources returns every location holding parseable MCP server definitions:
// the canonical store first, then each downstream target whose config file
// exists and parses. Count is the number of servers the source defines.
func MCPSources(home, syncHome string) []Candidate {
	var out []Candidate

	storePath := paths.StorePath(syncHome)
	if n, ok := countStore(storePath); ok {
		out = append(out, Candidate{Label: "canonical store", Path: storePath, Count: n})
	}

	for _, t := range platform.Targets() {
		path := t.ConfigPath(home)
		n, ok := countTarget(t, path)
		if !ok {
			continue
		}
		out = append(out, Candidate{Label: t.Name, Path: path, Count: n})
	}

	return out
}

func countStore(path string) (int, bool) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return 0, false
	}
	var cfg mcp.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return 0, false
	}
	return len(cfg.Servers), true
}

func countTarget(t platform.Target, path string) (int, bool) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return 0, false
	}

	if t.Format == platform.FormatTOML {
		cfg, err := platform.ParseCodex(data)
		if err != nil {
			return 0, false
		}
		return len(cfg.Servers), true
	}

	cfg, err := platform.ParseMCPServers(data)
	if err != nil {
		return 0, false
	}
	return len(cfg.Servers), true
}

// skillMeta is the SKILL.md frontmatter subset discovery cares about.
type skillMeta struct {
	Name string `yaml:"name"`
}

// SkillSources returns skill directories containing at least one skill:
// the project's canonical and per-assistant directories, then the user-level
// Claude directory. Count is the number of subdirectories holding a SKILL.md.
func SkillSources(home, projectDir string) []Candidate {
	dirs := []struct {
		label string
		path  string
	}{
		{"project skills", paths.SkillsDir(projectDir)},
		{"project claude skills", filepath.Join(projectDir, ".claude", "skills")},
		{"user claude skills", filepath.Join(home, ".claude", "skills")},
	}

	var out []Candidate
	for _, d := range dirs {
		n := countSkills(d.path)
		if n == 0 {
			continue
		}
		out = append(out, Candidate{Label: d.label, Path: d.path, Count: n})
	}
	return out
}

func countSkills(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, e.Name(), "SKILL.md")); err == nil {
			n++
		}
	}
	return n
}

// SkillName returns the display name of the skill in dir, preferring the
// SKILL.md frontmatter name and falling back to the directory name.
func SkillName(dir string) string {
	f, err := os.Open(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		return filepath.Base(dir)
	}
	defer f.Close()

	var meta skillMeta
	if err := frontmatter.ParseHeader(f, &meta); err != nil || meta.Name == "" {
		return filepath.Base(dir)
	}
	return meta.Name
}

// PromptSources returns the instruction files present in a project. Count is
// the file size in bytes.
func PromptSources(projectDir string) []Candidate {
	files := []string{
		"AGENTS.md",
		"CLAUDE.md",
		"GEMINI.md",
		filepath.Join(".github", "copilot-instructions.md"),
	}

	var out []Candidate
	for _, f := range files {
		path := filepath.Join(projectDir, f)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, Candidate{Label: f, Path: path, Count: int(info.Size())})
	}
	return out
}
