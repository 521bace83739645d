package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranshuparmar/portreap/internal/proc"
	"github.com/pranshuparmar/portreap/internal/session"
	"github.com/pranshuparmar/portreap/pkg/model"
)

const (
	// refreshInterval drives the periodic snapshot for the life of the session.
	refreshInterval = 2 * time.Second
	// postKillDelay gives the killed process time to fully exit before the
	// next snapshot, so the freed port reliably disappears from the list.
	postKillDelay = 500 * time.Millisecond
	// feedbackTTL clears the kill outcome from the status line.
	feedbackTTL = 3 * time.Second
)

type tickMsg time.Time

// entitiesMsg carries one normalized snapshot; it replaces the previous list
// wholesale.
type entitiesMsg []model.PortEntity

type killResultMsg struct {
	fb session.Feedback
}

type postKillMsg struct{ seq int }

type feedbackGoneMsg struct{ seq int }

func waitTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh snapshots and normalizes off the update loop. An inspection
// failure or timeout yields an empty list for this cycle, never an error.
func (m Model) refresh() tea.Cmd {
	inspector := m.inspector
	return func() tea.Msg {
		raw, err := inspector.Snapshot(context.Background())
		if err != nil {
			return entitiesMsg(nil)
		}
		return entitiesMsg(proc.ParseListeners(raw))
	}
}

// killSelected terminates the entity under the cursor and reports the
// outcome as a killResultMsg. Returns nil when nothing is selected.
func (m Model) killSelected() tea.Cmd {
	ent, ok := m.sess.SelectedEntity()
	if !ok {
		return nil
	}
	terminator := m.terminator
	return func() tea.Msg {
		if err := terminator.Terminate(ent.PID); err != nil {
			return killResultMsg{session.Feedback{
				Kind: session.FeedbackError,
				Text: fmt.Sprintf("Failed: %v", err),
			}}
		}
		return killResultMsg{session.Feedback{
			Kind: session.FeedbackSuccess,
			Text: fmt.Sprintf("Killed %s (%s)", ent.Process, ent.PID),
		}}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.refresh(), waitTick())

	case entitiesMsg:
		m.sess.SetEntities(msg)
		return m, nil

	case killResultMsg:
		m.sess.SetFeedback(msg.fb)
		// Cancel-then-restart: only one post-kill refresh and one expiry may
		// be pending, so a second kill supersedes the first's timers.
		m.killSeq++
		seq := m.killSeq
		return m, tea.Batch(
			tea.Tick(postKillDelay, func(time.Time) tea.Msg {
				return postKillMsg{seq: seq}
			}),
			tea.Tick(feedbackTTL, func(time.Time) tea.Msg {
				return feedbackGoneMsg{seq: seq}
			}),
		)

	case postKillMsg:
		if msg.seq != m.killSeq || m.quitting {
			return m, nil
		}
		return m, m.refresh()

	case feedbackGoneMsg:
		if msg.seq == m.killSeq {
			m.sess.ClearFeedback()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.apply(resolveKey(&m.sess, m.keys, msg))
	}

	return m, nil
}

func (m Model) apply(act action) (tea.Model, tea.Cmd) {
	switch act.kind {
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	case actionDirectKill:
		return m, m.killSelected()
	case actionToggleHelp:
		m.sess.ToggleHelp()
	case actionDismissHelp:
		m.sess.DismissHelp()
	case actionConfirmAccept:
		m.sess.CancelConfirm()
		return m, m.killSelected()
	case actionConfirmDecline:
		m.sess.CancelConfirm()
	case actionMoveUp:
		m.sess.MoveUp()
	case actionMoveDown:
		m.sess.MoveDown()
	case actionEnterSearch:
		m.sess.EnterSearch()
	case actionRequestKill:
		m.sess.RequestKill()
	case actionClearFilter:
		m.sess.ClearFilter()
	case actionRefresh:
		return m, m.refresh()
	case actionAppendQuery:
		m.sess.AppendQuery(act.runes)
	case actionBackspace:
		m.sess.BackspaceQuery()
	case actionCommitSearch:
		m.sess.CommitSearch()
	case actionCancelSearch:
		m.sess.CancelSearch()
	}
	return m, nil
}
