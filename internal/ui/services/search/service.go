package search

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/logging"
)

var log = logging.NewLogger("search")

// ApplyFunc hands a query to the store and reports how many widgets matched
type ApplyFunc func(query string) int

// Service debounces search-as-you-type. Every keystroke schedules the query
// after the quiet period; a newer keystroke makes older schedules stale, so
// only the last one reaches the store.
type Service struct {
	state *State
	delay time.Duration
	apply ApplyFunc
}

// NewService creates a new search service
func NewService(delay time.Duration, apply ApplyFunc) *Service {
	return &Service{
		state: &State{},
		delay: delay,
		apply: apply,
	}
}

// Input records the text typed so far and schedules it
func (s *Service) Input(query string) tea.Cmd {
	if query == s.state.Input {
		return nil
	}
	s.state.Input = query
	s.state.pending++
	seq := s.state.pending

	if s.delay <= 0 {
		return func() tea.Msg { return QueryReadyMsg{Seq: seq, Query: query} }
	}
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return QueryReadyMsg{Seq: seq, Query: query}
	})
}

// Ready applies a scheduled query if nothing newer was typed since.
// It returns false for stale messages.
func (s *Service) Ready(msg QueryReadyMsg) bool {
	if msg.Seq != s.state.pending {
		log.WithField("seq", msg.Seq).Debug("dropping stale query")
		return false
	}
	s.commit(msg.Query)
	return true
}

// Clear cancels any pending query and applies the empty query right away
func (s *Service) Clear() {
	s.state.pending++
	s.state.Input = ""
	s.commit("")
}

// Sync adopts a query that was changed outside the search bar, e.g. by a reset
func (s *Service) Sync(query string, matches int) {
	s.state.pending++
	s.state.Input = query
	s.state.Applied = query
	s.state.Matches = matches
	if query == "" {
		s.state.ResultsOpen = false
	}
}

func (s *Service) commit(query string) {
	s.state.Applied = query
	s.state.Matches = s.apply(query)

	// Results open by themselves once something matches, and close when
	// the query is emptied
	if s.state.Matches > 0 && query != "" {
		s.state.ResultsOpen = true
	}
	if query == "" {
		s.state.ResultsOpen = false
	}
}

// OpenBar shows the search bar
func (s *Service) OpenBar() {
	s.state.BarOpen = true
}

// CloseBar hides the bar and the results, clearing the query
func (s *Service) CloseBar() {
	s.Clear()
	s.state.BarOpen = false
}

// BackToDashboard hides the results but keeps the bar and its query
func (s *Service) BackToDashboard() {
	s.state.ResultsOpen = false
	s.state.BarOpen = true
}

// ShowResults reopens the results for the applied query
func (s *Service) ShowResults() {
	if s.state.Applied != "" {
		s.state.ResultsOpen = true
	}
}

// GetInput returns the text typed so far
func (s *Service) GetInput() string { return s.state.Input }

// GetQuery returns the query the store is filtering by
func (s *Service) GetQuery() string { return s.state.Applied }

// GetMatchCount returns the number of matches for the applied query
func (s *Service) GetMatchCount() int { return s.state.Matches }

// IsBarOpen reports whether the search bar is shown
func (s *Service) IsBarOpen() bool { return s.state.BarOpen }

// IsResultsOpen reports whether the results view replaces the dashboard
func (s *Service) IsResultsOpen() bool { return s.state.ResultsOpen }

// IsPending reports whether a typed query hasn't been applied yet
func (s *Service) IsPending() bool { return s.state.Input != s.state.Applied }
