// Package spawn launches external programs on behalf of the navigation
// core. The core only decides when to launch and in which mode; it
// never inspects the child beyond whether it ran.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
)

// Mode selects how a launched program relates to the UI process.
type Mode int

const (
	// Foreground hands the terminal to the child and waits for it to
	// exit. The caller is responsible for suspending the screen first.
	Foreground Mode = iota
	// Suppressed waits for the child but discards its output.
	Suppressed
	// Detached starts the child in its own session with output
	// discarded and returns immediately.
	Detached
)

func (m Mode) String() string {
	switch m {
	case Foreground:
		return "foreground"
	case Suppressed:
		return "suppressed"
	case Detached:
		return "detached"
	}
	return "unknown"
}

// Request describes one external program launch.
type Request struct {
	Program string
	Args    []string
	Mode    Mode
}

// Launcher runs external programs.
type Launcher interface {
	Launch(program string, args []string, mode Mode) error
}

// ExecLauncher is the os/exec-backed default.
type ExecLauncher struct{}

func (ExecLauncher) Launch(program string, args []string, mode Mode) error {
	cmd := exec.Command(program, args...)

	switch mode {
	case Foreground:
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()

	case Suppressed:
		null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return err
		}
		defer null.Close()
		cmd.Stdout = null
		cmd.Stderr = null
		return cmd.Run()

	case Detached:
		null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return err
		}
		defer null.Close()
		cmd.Stdout = null
		cmd.Stderr = null
		detach(cmd)
		if err := cmd.Start(); err != nil {
			return err
		}
		return cmd.Process.Release()
	}

	return fmt.Errorf("unknown launch mode %d", mode)
}
