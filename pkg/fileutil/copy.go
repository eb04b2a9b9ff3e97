package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// CopyRecursive mirrors the contents of src into dst, creating dst and any
// intermediate directories. Subdirectories are recursed into; regular files
// are copied by content. Symlinked entries are copied through (their resolved
// content, not the link itself); special files are skipped.
//
// The mirror is best-effort: a per-entry failure (broken symlink, permission
// denial) skips that entry rather than aborting the whole tree. Skipped
// entries are returned by source path so callers can report them.
//
// An error is returned only when src cannot be read or dst cannot be created
// at the top level.
func CopyRecursive(src, dst string) (skipped []string, err error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}
	if !info.IsDir() {
		return nil, errors.Newf("source is not a directory: %s", src)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating destination")
	}

	return copyTree(src, dst, nil), nil
}

// copyTree copies every entry under src into dst, accumulating the source
// paths of entries that could not be copied.
func copyTree(src, dst string, skipped []string) []string {
	entries, err := os.ReadDir(src)
	if err != nil {
		return append(skipped, src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Resolve through symlinks so linked content is mirrored by value.
		info, err := os.Stat(srcPath)
		if err != nil {
			skipped = append(skipped, srcPath)
			continue
		}

		switch {
		case info.IsDir():
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				skipped = append(skipped, srcPath)
				continue
			}
			skipped = copyTree(srcPath, dstPath, skipped)
		case info.Mode().IsRegular():
			if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
				skipped = append(skipped, srcPath)
			}
		default:
			// Sockets, devices, fifos: not mirrored.
			skipped = append(skipped, srcPath)
		}
	}

	return skipped
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
