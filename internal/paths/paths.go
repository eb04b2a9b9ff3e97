package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Platform identifiers for the downstream AI coding assistants.
const (
	PlatformClaude      = "claude"
	PlatformCopilot     = "copilot"
	PlatformAntigravity = "antigravity"
	PlatformGemini      = "gemini"
	PlatformOpenCode    = "opencode"
	PlatformCodex       = "codex"
)

// SyncHomeEnv overrides the sync home directory when set.
const SyncHomeEnv = "AGENT_SYNC_HOME"

// DefaultSyncDirName is the sync home directory name under $HOME.
const DefaultSyncDirName = ".agent-sync"

// platformMCPConfigs maps platform names to their MCP config file paths
// relative to the user's home directory.
var platformMCPConfigs = map[string]string{
	PlatformClaude:      filepath.Join(".claude", ".mcp.json"),
	PlatformCopilot:     filepath.Join(".copilot", "mcp-config.json"),
	PlatformAntigravity: filepath.Join(".antigravity", "mcp-config.json"),
	PlatformGemini:      filepath.Join(".gemini", "settings.json"),
	PlatformOpenCode:    filepath.Join(".config", "opencode", "opencode.json"),
	PlatformCodex:       filepath.Join(".codex", "config.toml"),
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// SyncHome returns the directory holding the canonical store and backups.
// The AGENT_SYNC_HOME environment variable takes precedence; otherwise the
// default is <home>/.agent-sync. The result is computed from the explicit
// home argument so tests can run against isolated trees.
func SyncHome(home string) string {
	if env := os.Getenv(SyncHomeEnv); env != "" {
		return env
	}
	return filepath.Join(home, DefaultSyncDirName)
}

// StorePath returns the canonical MCP store file within the sync home.
func StorePath(syncHome string) string {
	return filepath.Join(syncHome, "mcp.json")
}

// BackupRoot returns the backup directory for a given day within the sync home.
// The date argument is an ISO date (YYYY-MM-DD).
func BackupRoot(syncHome, date string) string {
	return filepath.Join(syncHome, "backups", date)
}

// ConfigHome returns the XDG config home directory, used for this tool's own
// settings file.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ValidPlatform returns true if the platform name is recognized.
func ValidPlatform(platform string) bool {
	_, ok := platformMCPConfigs[platform]
	return ok
}

// Platforms returns all supported platform identifiers in the fixed order
// targets are reconciled.
func Platforms() []string {
	return []string{
		PlatformClaude,
		PlatformCopilot,
		PlatformAntigravity,
		PlatformGemini,
		PlatformOpenCode,
		PlatformCodex,
	}
}

// MCPConfigPath returns the MCP config file for a platform, resolved against
// the given home directory.
//
// Platform paths:
//   - claude: <home>/.claude/.mcp.json
//   - copilot: <home>/.copilot/mcp-config.json
//   - antigravity: <home>/.antigravity/mcp-config.json
//   - gemini: <home>/.gemini/settings.json
//   - opencode: <home>/.config/opencode/opencode.json
//   - codex: <home>/.codex/config.toml
//
// Returns an empty string for unknown platforms or empty home.
func MCPConfigPath(platform, home string) string {
	relPath, ok := platformMCPConfigs[platform]
	if !ok || home == "" {
		return ""
	}
	return filepath.Join(home, relPath)
}

// SkillsDir returns the canonical real skill directory for a project:
// <projectRoot>/.agent/skills. Per-assistant skill paths are symlinks to it.
func SkillsDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".agent", "skills")
}

// SkillLinks returns the symlink paths that should resolve to SkillsDir,
// in reconciliation order.
func SkillLinks(projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, ".agents", "skills"),
		filepath.Join(projectRoot, ".claude", "skills"),
	}
}

// InstructionsPath returns the canonical instruction file for a project:
// <projectRoot>/AGENTS.md. Per-assistant instruction files are symlinks to it.
func InstructionsPath(projectRoot string) string {
	return filepath.Join(projectRoot, "AGENTS.md")
}

// InstructionLinks returns the symlink paths that should resolve to
// InstructionsPath, in reconciliation order.
func InstructionLinks(projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, "CLAUDE.md"),
		filepath.Join(projectRoot, "GEMINI.md"),
	}
}
