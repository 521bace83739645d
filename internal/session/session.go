package session

import "github.com/pranshuparmar/portreap/pkg/model"

// Mode is the interaction mode. Exactly two variants exist; the dispatcher
// switches over both explicitly.
type Mode int

const (
	ModeNavigate Mode = iota
	ModeSearch
)

// FeedbackKind tags the outcome of the most recent kill attempt.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
)

// Feedback is transient status text; it is cleared by a timer, not by input.
type Feedback struct {
	Kind FeedbackKind
	Text string
}

// State is the single session-wide state object. All transitions run
// sequentially on the event loop; no locking, no concurrent writers.
//
// Selected is interpreted against the filtered list and is re-clamped inside
// every transition that can change the filtered length, so it is never stale.
type State struct {
	Entities       []model.PortEntity
	Mode           Mode
	Query          string
	Selected       int
	ConfirmPending bool
	HelpVisible    bool
	Feedback       Feedback
}

func New() State {
	return State{Mode: ModeNavigate}
}

// Filtered derives the current view of Entities through Query.
func (s *State) Filtered() []model.PortEntity {
	return Filter(s.Entities, s.Query)
}

// SelectedEntity returns the entity under the cursor in the filtered view.
func (s *State) SelectedEntity() (model.PortEntity, bool) {
	filtered := s.Filtered()
	if len(filtered) == 0 {
		return model.PortEntity{}, false
	}
	idx := Clamp(s.Selected, len(filtered)-1)
	return filtered[idx], true
}

// SetEntities replaces the snapshot wholesale and re-clamps the selection
// against the new filtered view. Runs on every refresh, solicited or not, so
// a shrinking list never leaves the cursor past the end.
func (s *State) SetEntities(entities []model.PortEntity) {
	s.Entities = entities
	s.reclamp()
}

func (s *State) MoveUp() {
	s.Selected = Clamp(s.Selected-1, len(s.Filtered())-1)
}

func (s *State) MoveDown() {
	s.Selected = Clamp(s.Selected+1, len(s.Filtered())-1)
}

// EnterSearch is idempotent: an existing query stays active.
func (s *State) EnterSearch() {
	s.Mode = ModeSearch
}

func (s *State) AppendQuery(runes []rune) {
	s.Query += string(runes)
	s.reclamp()
}

func (s *State) BackspaceQuery() {
	if s.Query == "" {
		return
	}
	r := []rune(s.Query)
	s.Query = string(r[:len(r)-1])
	s.reclamp()
}

// CommitSearch leaves Search mode with the filter still active.
func (s *State) CommitSearch() {
	s.Mode = ModeNavigate
}

// CancelSearch discards the query and leaves Search mode.
func (s *State) CancelSearch() {
	s.Query = ""
	s.Mode = ModeNavigate
	s.reclamp()
}

// ClearFilter drops an active filter from Navigate mode. Never changes mode.
func (s *State) ClearFilter() {
	if s.Query == "" {
		return
	}
	s.Query = ""
	s.reclamp()
}

// RequestKill opens the confirmation prompt when a selection exists.
func (s *State) RequestKill() {
	if _, ok := s.SelectedEntity(); ok {
		s.ConfirmPending = true
	}
}

func (s *State) CancelConfirm() {
	s.ConfirmPending = false
}

func (s *State) ToggleHelp() {
	s.HelpVisible = !s.HelpVisible
}

func (s *State) DismissHelp() {
	s.HelpVisible = false
}

func (s *State) SetFeedback(fb Feedback) {
	s.Feedback = fb
}

func (s *State) ClearFeedback() {
	s.Feedback = Feedback{}
}

func (s *State) reclamp() {
	s.Selected = Clamp(s.Selected, len(s.Filtered())-1)
}
