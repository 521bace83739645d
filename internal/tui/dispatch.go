package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranshuparmar/portreap/internal/session"
)

type actionKind int

const (
	actionNone actionKind = iota
	actionQuit
	actionDirectKill
	actionToggleHelp
	actionDismissHelp
	actionConfirmAccept
	actionConfirmDecline
	actionMoveUp
	actionMoveDown
	actionEnterSearch
	actionRequestKill
	actionClearFilter
	actionRefresh
	actionAppendQuery
	actionBackspace
	actionCommitSearch
	actionCancelSearch
)

type action struct {
	kind  actionKind
	runes []rune
}

// resolveKey maps one keystroke to at most one session transition. Priority
// is fixed: global chords, then the help toggle, then help dismissal, then
// the confirm prompt, then the active mode's bindings. The confirm prompt
// and the help overlay swallow everything they do not recognize.
func resolveKey(s *session.State, keys keyMap, msg tea.KeyMsg) action {
	if key.Matches(msg, keys.ForceQuit) {
		return action{kind: actionQuit}
	}
	if key.Matches(msg, keys.DirectKill) {
		return action{kind: actionDirectKill}
	}

	// ? toggles help from navigate mode, including when the overlay is
	// already open. In search mode it is query text; while confirming it
	// is swallowed below.
	if key.Matches(msg, keys.Help) && s.Mode == session.ModeNavigate {
		if s.ConfirmPending {
			return action{kind: actionNone}
		}
		return action{kind: actionToggleHelp}
	}

	if s.HelpVisible {
		return action{kind: actionDismissHelp}
	}

	if s.ConfirmPending {
		switch msg.String() {
		case "y", "Y":
			return action{kind: actionConfirmAccept}
		case "n", "N", "esc":
			return action{kind: actionConfirmDecline}
		}
		return action{kind: actionNone}
	}

	switch s.Mode {
	case session.ModeNavigate:
		return resolveNavigate(keys, msg)
	case session.ModeSearch:
		return resolveSearch(msg)
	}
	return action{kind: actionNone}
}

func resolveNavigate(keys keyMap, msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, keys.Up):
		return action{kind: actionMoveUp}
	case key.Matches(msg, keys.Down):
		return action{kind: actionMoveDown}
	case key.Matches(msg, keys.Search):
		return action{kind: actionEnterSearch}
	case key.Matches(msg, keys.Kill):
		return action{kind: actionRequestKill}
	case key.Matches(msg, keys.Clear):
		return action{kind: actionClearFilter}
	case key.Matches(msg, keys.Refresh):
		return action{kind: actionRefresh}
	case key.Matches(msg, keys.Quit):
		return action{kind: actionQuit}
	}
	return action{kind: actionNone}
}

// resolveSearch treats printable input as query text, so navigate letters
// like j, k, and q append instead of binding. Only the arrow keys move the
// selection here.
func resolveSearch(msg tea.KeyMsg) action {
	switch msg.Type {
	case tea.KeyEsc:
		return action{kind: actionCancelSearch}
	case tea.KeyEnter:
		return action{kind: actionCommitSearch}
	case tea.KeyBackspace, tea.KeyDelete:
		return action{kind: actionBackspace}
	case tea.KeyUp:
		return action{kind: actionMoveUp}
	case tea.KeyDown:
		return action{kind: actionMoveDown}
	case tea.KeySpace:
		return action{kind: actionAppendQuery, runes: []rune{' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return action{kind: actionNone}
		}
		return action{kind: actionAppendQuery, runes: msg.Runes}
	}
	return action{kind: actionNone}
}
