//go:build !windows

package proc

import (
	"fmt"
	"os"
	"syscall"
)

// SignalTerminator kills processes with SIGKILL. The signal is deliberately
// not catchable: freeing the port wins over letting the target clean up.
type SignalTerminator struct{}

func (SignalTerminator) Terminate(pid string) error {
	n, err := parsePID(pid)
	if err != nil {
		return err
	}
	p, err := os.FindProcess(n)
	if err != nil {
		return fmt.Errorf("process %d not found: %w", n, err)
	}
	if err := p.Signal(syscall.SIGKILL); err != nil {
		return fmt.Errorf("kill PID %d failed: %w", n, err)
	}
	return nil
}
