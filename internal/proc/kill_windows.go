//go:build windows

package proc

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// SignalTerminator kills processes forcibly via taskkill.
type SignalTerminator struct{}

func (SignalTerminator) Terminate(pid string) error {
	n, err := parsePID(pid)
	if err != nil {
		return err
	}
	out, err := exec.Command("taskkill", "/F", "/PID", strconv.Itoa(n)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("taskkill PID %d: %s", n, strings.TrimSpace(string(out)))
	}
	return nil
}
