package proc

import (
	"strings"
	"testing"
)

func TestParsePID_Valid(t *testing.T) {
	n, err := parsePID("1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1234 {
		t.Errorf("pid = %d, want 1234", n)
	}
}

func TestParsePID_Rejects(t *testing.T) {
	// Zero and negatives would address a process group, not a process.
	for _, pid := range []string{"-5", "0", "", "abc", "12.5", "1e3"} {
		if _, err := parsePID(pid); err == nil {
			t.Errorf("parsePID(%q) should fail", pid)
		}
	}
}

func TestTerminate_InvalidPIDNeverSignals(t *testing.T) {
	err := SignalTerminator{}.Terminate("-5")
	if err == nil {
		t.Fatal("expected error for pid -5")
	}
	if !strings.Contains(err.Error(), "invalid PID") {
		t.Errorf("error = %v, want invalid PID reason", err)
	}
}
