//go:build !windows

package link

import "github.com/cockroachdb/errors"

// makeJunction is Windows-only; elsewhere the caller falls through to the
// copy fallback.
func makeJunction(target, linkPath string) error {
	return errors.New("junctions are not supported on this platform")
}
