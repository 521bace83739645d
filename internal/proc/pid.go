package proc

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePID rejects zero and negative values before any signal is sent:
// kill(2) interprets them as a process group or "every process" rather than
// a single target.
func parsePID(pid string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(pid))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid PID %q", pid)
	}
	return n, nil
}
