// Package backup provides the staging area for paths displaced during
// reconciliation. Conflicting files and directories are renamed into a
// per-day backup root rather than deleted; nothing in this package ever
// restores or prunes them.
package backup

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/agentsync/internal/paths"
)

// Context is one run's view of the backup store: a date-keyed root directory
// and a counter that keeps displaced paths from colliding within the run.
// The root is created lazily on first use.
type Context struct {
	// Root is the backup directory for today, <syncHome>/backups/<YYYY-MM-DD>.
	Root string

	counter int
}

// NewContext creates a backup context rooted at today's date under syncHome.
func NewContext(syncHome string) *Context {
	return &Context{
		Root: paths.BackupRoot(syncHome, time.Now().Format("2006-01-02")),
	}
}

// MoveToBackup renames path into the backup root under a flattened name
// (path separators become a literal double underscore) suffixed with a
// counter. Suffixes already present in the root are skipped, so a second
// run on the same day never overwrites an earlier backup.
//
// Returns the destination the path was moved to.
func (c *Context) MoveToBackup(path string) (string, error) {
	if err := os.MkdirAll(c.Root, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup root")
	}

	flat := flatten(path)
	var dest string
	for {
		dest = filepath.Join(c.Root, flat+"_"+strconv.Itoa(c.counter))
		if _, err := os.Lstat(dest); err != nil {
			break
		}
		c.counter++
	}

	if err := os.Rename(path, dest); err != nil {
		return "", errors.Wrap(err, "moving to backup")
	}
	c.counter++

	return dest, nil
}

// flatten turns an absolute path into a single filename segment.
func flatten(path string) string {
	flat := strings.ReplaceAll(path, string(filepath.Separator), "__")
	if filepath.Separator != '/' {
		flat = strings.ReplaceAll(flat, "/", "__")
	}
	return flat
}
