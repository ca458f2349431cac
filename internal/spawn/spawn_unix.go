//go:build !windows

package spawn

import (
	"os/exec"
	"syscall"
)

// detach places the child in its own session so it survives the browser
// exiting and never receives the terminal's signals.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
