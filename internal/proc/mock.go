package proc

import "context"

// MockInspector returns canned lsof output for tests.
type MockInspector struct {
	Raw string
	Err error
}

func (m *MockInspector) Snapshot(ctx context.Context) (string, error) {
	return m.Raw, m.Err
}

// MockTerminator records kill requests instead of signalling.
type MockTerminator struct {
	Killed []string
	Err    error
}

func (m *MockTerminator) Terminate(pid string) error {
	m.Killed = append(m.Killed, pid)
	return m.Err
}
