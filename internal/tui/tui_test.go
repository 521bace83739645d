package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/pranshuparmar/portreap/internal/proc"
)

func TestTUI_FullFlow(t *testing.T) {
	raw := "COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME\n" +
		"node 100 alice 20u IPv4 0x1 0t0 TCP 127.0.0.1:3000 (LISTEN)\n" +
		"nginx 200 root 20u IPv4 0x2 0t0 TCP *:8080 (LISTEN)\n" +
		"postgres 300 postgres 6u IPv6 0x3 0t0 TCP [::1]:5432 (LISTEN)\n"

	m := New(&proc.MockInspector{Raw: raw}, &proc.MockTerminator{}, "v0.0.0-test")
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	// Wait for the normalized snapshot to render.
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("3000")) &&
			bytes.Contains(bts, []byte("8080")) &&
			bytes.Contains(bts, []byte("5432"))
	}, teatest.WithCheckInterval(100*time.Millisecond),
		teatest.WithDuration(5*time.Second))

	// Navigate down, open and dismiss the confirm prompt.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	// Quit.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
