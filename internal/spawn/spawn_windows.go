//go:build windows

package spawn

import "os/exec"

// detach is a no-op on Windows; Start already runs the child without a
// controlling console tied to ours.
func detach(_ *exec.Cmd) {}
