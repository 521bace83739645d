//go:build !linux && !darwin

package proc

import (
	"context"
	"fmt"
	"runtime"
)

// LsofInspector lists TCP listening sockets via lsof.
type LsofInspector struct{}

func (LsofInspector) Snapshot(ctx context.Context) (string, error) {
	return "", fmt.Errorf("listing sockets is not supported on %s", runtime.GOOS)
}
