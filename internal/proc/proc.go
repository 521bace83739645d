package proc

import "context"

// Inspector produces the raw socket listing for one refresh cycle.
type Inspector interface {
	Snapshot(ctx context.Context) (string, error)
}

// Terminator delivers an immediate, non-catchable termination signal to one
// process. Failure comes back as an error value, never a panic.
type Terminator interface {
	Terminate(pid string) error
}
