// Package link converges symlinks on their desired targets. Reconcile is the
// single entry point: it decides and applies the minimal safe mutation for
// one (target, linkPath) pair and classifies the outcome so callers can
// render a precise per-target report. It never propagates errors — every
// call site checks Result.Status.
package link

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/agentsync/internal/backup"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// ConflictPolicy controls what happens when a real file or directory sits
// where a link should be.
type ConflictPolicy string

const (
	// PolicyBackup displaces the conflicting path into the backup store
	// before linking. This is the default: nothing is ever deleted.
	PolicyBackup ConflictPolicy = "backup"

	// PolicySkip leaves the conflicting path alone and records a skip.
	PolicySkip ConflictPolicy = "skip"
)

// Status classifies a reconciliation outcome.
type Status string

const (
	StatusOK    Status = "ok"
	StatusSkip  Status = "skip"
	StatusError Status = "error"
)

// Action records what Reconcile did (or declined to do).
type Action string

const (
	// ActionCreated means no entry existed and the link was created.
	ActionCreated Action = "created"

	// ActionAlreadyCorrect means an existing symlink already resolved to
	// the desired target; nothing was touched.
	ActionAlreadyCorrect Action = "already_correct"

	// ActionReplaceSymlink means a symlink pointing elsewhere was removed
	// and recreated.
	ActionReplaceSymlink Action = "replace_symlink"

	// ActionBackupAndLink means a conflicting real path was moved to the
	// backup store and the link created in its place.
	ActionBackupAndLink Action = "backup_and_link"

	// ActionSkipConflict means a conflicting real path was left untouched
	// under PolicySkip.
	ActionSkipConflict Action = "skip_conflict"
)

// Fallback methods used when a true symbolic link could not be created.
const (
	// FallbackJunction is a Windows directory junction.
	FallbackJunction = "junction"

	// FallbackCopy is a recursive copy of the target. Edits no longer
	// propagate, but the path exists with correct content everywhere.
	FallbackCopy = "copy"
)

// Result is the outcome of reconciling one link.
type Result struct {
	// Status is ok, skip, or error.
	Status Status

	// Action is what happened.
	Action Action

	// LinkPath is the path that was reconciled.
	LinkPath string

	// Target is the desired real target.
	Target string

	// Fallback names the degraded link method used, if any.
	Fallback string

	// Err holds the failure when Status is StatusError.
	Err error
}

// Reconcile converges linkPath on desiredTarget.
//
// The decision ladder, in order: create the parent directory; inspect
// linkPath without following it; create the link if nothing is there;
// compare and replace an existing symlink; displace or skip a conflicting
// real entry per policy. Relative symlink targets are resolved against the
// link's parent directory before comparison.
//
// bctx receives displaced conflicting paths; it is only consulted under
// PolicyBackup.
func Reconcile(desiredTarget, linkPath string, policy ConflictPolicy, bctx *backup.Context) Result {
	res := Result{LinkPath: linkPath, Target: desiredTarget}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0o755); err != nil {
		return res.fail(errors.Wrap(err, "creating link parent"))
	}

	info, err := os.Lstat(linkPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return res.fail(errors.Wrap(err, "inspecting link path"))
		}
		// Nothing there: create.
		fallback, err := createLink(desiredTarget, linkPath)
		if err != nil {
			return res.fail(err)
		}
		res.Status, res.Action, res.Fallback = StatusOK, ActionCreated, fallback
		return res
	}

	if info.Mode()&os.ModeSymlink != 0 {
		raw, err := os.Readlink(linkPath)
		if err != nil {
			return res.fail(errors.Wrap(err, "reading existing symlink"))
		}
		if resolveTarget(raw, linkPath) == filepath.Clean(desiredTarget) {
			res.Status, res.Action = StatusSkip, ActionAlreadyCorrect
			return res
		}
		if err := os.Remove(linkPath); err != nil {
			return res.fail(errors.Wrap(err, "removing stale symlink"))
		}
		fallback, err := createLink(desiredTarget, linkPath)
		if err != nil {
			return res.fail(err)
		}
		res.Status, res.Action, res.Fallback = StatusOK, ActionReplaceSymlink, fallback
		return res
	}

	// A real file or directory is in the way.
	if policy == PolicySkip {
		res.Status, res.Action = StatusSkip, ActionSkipConflict
		return res
	}

	if _, err := bctx.MoveToBackup(linkPath); err != nil {
		return res.fail(err)
	}
	fallback, err := createLink(desiredTarget, linkPath)
	if err != nil {
		return res.fail(err)
	}
	res.Status, res.Action, res.Fallback = StatusOK, ActionBackupAndLink, fallback
	return res
}

func (r Result) fail(err error) Result {
	r.Status = StatusError
	r.Err = err
	return r
}

// resolveTarget resolves a symlink's raw target the way the OS would:
// relative targets against the link's parent directory, absolute targets
// taken verbatim.
func resolveTarget(raw, linkPath string) string {
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(linkPath), raw))
}

// createLink makes linkPath resolve to target, degrading gracefully:
// a true symbolic link first, a directory junction where those exist, and
// finally a content copy. Returns the fallback method used, if any.
func createLink(target, linkPath string) (string, error) {
	if err := os.Symlink(target, linkPath); err == nil {
		return "", nil
	}

	if err := makeJunction(target, linkPath); err == nil {
		return FallbackJunction, nil
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", errors.Wrap(err, "reading link target")
	}
	if info.IsDir() {
		if _, err := fileutil.CopyRecursive(target, linkPath); err != nil {
			return "", errors.Wrap(err, "copying target directory")
		}
		return FallbackCopy, nil
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return "", errors.Wrap(err, "reading target file")
	}
	if err := os.WriteFile(linkPath, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrap(err, "copying target file")
	}
	return FallbackCopy, nil
}
