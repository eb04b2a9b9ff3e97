//go:build windows

package link

import "os/exec"

// makeJunction creates a directory junction, which unlike a symbolic link
// needs no elevated privileges on Windows.
func makeJunction(target, linkPath string) error {
	return exec.Command("cmd", "/c", "mklink", "/J", linkPath, target).Run()
}
