// Package patch merges converted server fragments into downstream config
// files without disturbing the content those files hold for other tools.
//
// Downstream files are jointly owned: this tool may only touch the single
// top-level JSON key or the [mcp_servers.*] TOML sections it is responsible
// for. A present-but-unparseable file is a hard per-target error and is left
// byte-for-byte untouched — merging against an empty document would discard
// the user's content on write-back.
package patch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// JSON replaces the single top-level key in the JSON file at path with value,
// preserving every other top-level key, and writes the result back
// pretty-printed with a trailing newline.
//
// A missing file starts from an empty object when createIfMissing is set;
// otherwise it returns ErrNotInstalled so the caller can record a skip.
func JSON(path, key string, value any, createIfMissing bool) error {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(syncerrors.ErrUnparseableTarget, "%s: %v", path, err)
		}
		// A literal `null` unmarshals cleanly into a nil map.
		if doc == nil {
			doc = make(map[string]json.RawMessage)
		}
	case os.IsNotExist(err):
		if !createIfMissing {
			return errors.Wrap(syncerrors.ErrNotInstalled, path)
		}
	default:
		return errors.Wrap(err, "reading config")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshaling fragment")
	}
	doc[key] = raw

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return fileutil.AtomicWriteJSON(path, doc)
}
