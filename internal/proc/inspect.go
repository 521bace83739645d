//go:build linux || darwin

package proc

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// snapshotTimeout bounds the lsof call; a stale network mount or hung kernel
// path can otherwise block it indefinitely.
const snapshotTimeout = 5 * time.Second

// LsofInspector lists TCP listening sockets via lsof.
type LsofInspector struct{}

func (LsofInspector) Snapshot(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "lsof", "-nP", "-iTCP", "-sTCP:LISTEN").Output()
	if err != nil {
		return "", fmt.Errorf("lsof: %w", err)
	}
	return string(out), nil
}
