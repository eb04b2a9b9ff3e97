// Package syncer orchestrates reconciliation from the canonical store out to
// the downstream assistant configs, skill directories, and instruction files.
// Each target is handled independently: a failure on one never blocks the
// rest, and every outcome is reported per target.
package syncer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/agentsync/internal/backup"
	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/link"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/patch"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/internal/platform"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// TargetStatus is the outcome of pushing the canonical config to one target.
type TargetStatus string

const (
	// StatusSynced means the target's config was rewritten successfully.
	StatusSynced TargetStatus = "synced"

	// StatusSkipped means the target's CLI is not installed.
	StatusSkipped TargetStatus = "skipped"

	// StatusFailed means the target could not be updated; Err says why.
	StatusFailed TargetStatus = "failed"
)

// TargetResult is the per-target outcome of SyncServers.
type TargetResult struct {
	Name   string
	Status TargetStatus
	Err    error
}

// Syncer pushes canonical state to every downstream target.
type Syncer struct {
	home     string
	syncHome string
	policy   link.ConflictPolicy
	bctx     *backup.Context
	log      *slog.Logger
}

// New creates a Syncer. The backup context is shared across every
// reconciliation in the run so displaced paths land under one dated root.
func New(home, syncHome string, policy link.ConflictPolicy, log *slog.Logger) *Syncer {
	return &Syncer{
		home:     home,
		syncHome: syncHome,
		policy:   policy,
		bctx:     backup.NewContext(syncHome),
		log:      log,
	}
}

// SyncServers converts and patches the canonical config into each downstream
// target's file, in reconciliation order. Returns one result per target and
// the count of targets synced. A target whose CLI is not installed is
// skipped; any other patch failure is reported on that target alone.
func (s *Syncer) SyncServers(cfg *mcp.Config) ([]TargetResult, int) {
	return s.SyncTargets(cfg, platform.Targets())
}

// SyncTargets is SyncServers restricted to an explicit target list, in the
// order given. Used when the user filters platforms on the command line.
func (s *Syncer) SyncTargets(cfg *mcp.Config, targets []platform.Target) ([]TargetResult, int) {
	results := make([]TargetResult, 0, len(targets))
	synced := 0

	// Server env maps hold API tokens; mask them before they hit a handler
	// that may not redact (JSON format).
	for _, name := range cfg.Names() {
		s.log.Debug("syncing server", "server", name, "env", logging.MaskSecrets(cfg.Servers[name].Env))
	}

	for _, t := range targets {
		err := s.syncTarget(t, cfg)
		switch {
		case err == nil:
			s.log.Info("synced target", "target", t.Name)
			results = append(results, TargetResult{Name: t.Name, Status: StatusSynced})
			synced++
		case errors.Is(err, syncerrors.ErrNotInstalled):
			s.log.Debug("target not installed", "target", t.Name)
			results = append(results, TargetResult{Name: t.Name, Status: StatusSkipped})
		default:
			s.log.Warn("target sync failed", "target", t.Name, "error", err)
			results = append(results, TargetResult{Name: t.Name, Status: StatusFailed, Err: err})
		}
	}

	return results, synced
}

func (s *Syncer) syncTarget(t platform.Target, cfg *mcp.Config) error {
	path := t.ConfigPath(s.home)
	if path == "" {
		return errors.Newf("no config path for target %q", t.Name)
	}

	if t.Format == platform.FormatTOML {
		if err := patch.TOML(path, platform.CodexBlocks(cfg)); err != nil {
			return errors.Wrapf(err, "patching target %q", t.Name)
		}
		return nil
	}

	if err := patch.JSON(path, t.Key, t.Document(cfg), t.CreateIfMissing); err != nil {
		return errors.Wrapf(err, "patching target %q", t.Name)
	}
	return nil
}

// SyncSkills ensures the project's canonical skill directory exists and
// reconciles each per-assistant skill path as a symlink to it. Returns one
// Result per link.
func (s *Syncer) SyncSkills(projectDir string) ([]link.Result, error) {
	canonical := paths.SkillsDir(projectDir)
	if err := os.MkdirAll(canonical, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating canonical skills directory")
	}

	var results []link.Result
	for _, linkPath := range paths.SkillLinks(projectDir) {
		res := link.Reconcile(canonical, linkPath, s.policy, s.bctx)
		s.logResult(res)
		results = append(results, res)
	}
	return results, nil
}

// WriteInstructions writes the canonical AGENTS.md for the project and
// reconciles the per-assistant instruction files as symlinks to it. Content
// is written atomically with a trailing newline ensured.
func (s *Syncer) WriteInstructions(projectDir, content string) ([]link.Result, error) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	canonical := paths.InstructionsPath(projectDir)
	if err := fileutil.AtomicWriteFile(canonical, []byte(content), 0o644); err != nil {
		return nil, errors.Wrap(err, "writing instructions")
	}

	return s.SyncInstructions(projectDir)
}

// SyncInstructions reconciles the per-assistant instruction files as symlinks
// to the canonical AGENTS.md, which must already exist.
func (s *Syncer) SyncInstructions(projectDir string) ([]link.Result, error) {
	canonical := paths.InstructionsPath(projectDir)
	if _, err := os.Stat(canonical); err != nil {
		return nil, errors.Wrap(err, "canonical instructions missing")
	}

	var results []link.Result
	for _, linkPath := range paths.InstructionLinks(projectDir) {
		res := link.Reconcile(canonical, linkPath, s.policy, s.bctx)
		s.logResult(res)
		results = append(results, res)
	}
	return results, nil
}

func (s *Syncer) logResult(res link.Result) {
	switch res.Status {
	case link.StatusError:
		s.log.Warn("link reconcile failed", "link", res.LinkPath, "error", res.Err)
	default:
		s.log.Debug("link reconciled", "link", res.LinkPath, "action", string(res.Action))
	}
}

// ImportServers parses the server definitions at path and merges them into
// the canonical store, overwriting same-named entries. The source format is
// chosen by extension: .toml files are read as Codex config, everything else
// as a JSON server document. Returns the number of servers imported.
func ImportServers(store *mcp.Store, path string) (int, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return 0, errors.Wrap(err, "reading import source")
	}

	var imported *mcp.Config
	if filepath.Ext(path) == ".toml" {
		imported, err = platform.ParseCodex(data)
	} else {
		imported, err = platform.ParseMCPServers(data)
	}
	if err != nil {
		return 0, errors.Wrap(err, "parsing import source")
	}

	cfg := store.Load()
	n := cfg.Merge(imported)
	if err := store.Save(cfg); err != nil {
		return 0, err
	}
	return n, nil
}
