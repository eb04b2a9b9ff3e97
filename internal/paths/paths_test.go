package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSyncHome(t *testing.T) {
	t.Run("default under home", func(t *testing.T) {
		t.Setenv(SyncHomeEnv, "")
		os.Unsetenv(SyncHomeEnv)

		got := SyncHome("/home/alice")
		want := filepath.Join("/home/alice", ".agent-sync")
		if got != want {
			t.Errorf("SyncHome() = %q, want %q", got, want)
		}
	})

	t.Run("env override wins", func(t *testing.T) {
		t.Setenv(SyncHomeEnv, "/tmp/isolated-sync")

		if got := SyncHome("/home/alice"); got != "/tmp/isolated-sync" {
			t.Errorf("SyncHome() = %q, want env override", got)
		}
	})
}

func TestStorePath(t *testing.T) {
	got := StorePath("/home/alice/.agent-sync")
	want := filepath.Join("/home/alice/.agent-sync", "mcp.json")
	if got != want {
		t.Errorf("StorePath() = %q, want %q", got, want)
	}
}

func TestBackupRoot(t *testing.T) {
	got := BackupRoot("/sync", "2026-08-30")
	want := filepath.Join("/sync", "backups", "2026-08-30")
	if got != want {
		t.Errorf("BackupRoot() = %q, want %q", got, want)
	}
}

func TestMCPConfigPath(t *testing.T) {
	home := "/home/alice"
	tests := []struct {
		platform string
		want     string
	}{
		{PlatformClaude, filepath.Join(home, ".claude", ".mcp.json")},
		{PlatformCopilot, filepath.Join(home, ".copilot", "mcp-config.json")},
		{PlatformAntigravity, filepath.Join(home, ".antigravity", "mcp-config.json")},
		{PlatformGemini, filepath.Join(home, ".gemini", "settings.json")},
		{PlatformOpenCode, filepath.Join(home, ".config", "opencode", "opencode.json")},
		{PlatformCodex, filepath.Join(home, ".codex", "config.toml")},
		{"cursor", ""},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			if got := MCPConfigPath(tt.platform, home); got != tt.want {
				t.Errorf("MCPConfigPath(%q) = %q, want %q", tt.platform, got, tt.want)
			}
		})
	}

	t.Run("empty home", func(t *testing.T) {
		if got := MCPConfigPath(PlatformClaude, ""); got != "" {
			t.Errorf("MCPConfigPath with empty home = %q, want empty", got)
		}
	})
}

func TestPlatforms(t *testing.T) {
	all := Platforms()
	if len(all) != 6 {
		t.Fatalf("len(Platforms()) = %d, want 6", len(all))
	}
	for _, p := range all {
		if !ValidPlatform(p) {
			t.Errorf("ValidPlatform(%q) = false, want true", p)
		}
	}
	if ValidPlatform("windsurf") {
		t.Error("ValidPlatform(windsurf) = true, want false")
	}
}

func TestProjectLayout(t *testing.T) {
	root := "/proj"

	if got, want := SkillsDir(root), filepath.Join(root, ".agent", "skills"); got != want {
		t.Errorf("SkillsDir() = %q, want %q", got, want)
	}

	links := SkillLinks(root)
	wantLinks := []string{
		filepath.Join(root, ".agents", "skills"),
		filepath.Join(root, ".claude", "skills"),
	}
	if len(links) != len(wantLinks) {
		t.Fatalf("len(SkillLinks()) = %d, want %d", len(links), len(wantLinks))
	}
	for i := range links {
		if links[i] != wantLinks[i] {
			t.Errorf("SkillLinks()[%d] = %q, want %q", i, links[i], wantLinks[i])
		}
	}

	if got, want := InstructionsPath(root), filepath.Join(root, "AGENTS.md"); got != want {
		t.Errorf("InstructionsPath() = %q, want %q", got, want)
	}

	ilinks := InstructionLinks(root)
	if len(ilinks) != 2 || filepath.Base(ilinks[0]) != "CLAUDE.md" || filepath.Base(ilinks[1]) != "GEMINI.md" {
		t.Errorf("InstructionLinks() = %v", ilinks)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stating dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir() did not create a directory")
	}

	// Idempotent
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}
