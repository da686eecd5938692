package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/logging"
)

var log = logging.NewLogger("store")

// State is a point-in-time copy of everything the store holds.
// Selectors are pure functions over it.
type State struct {
	Categories      []domain.Category
	SearchQuery     string
	FilteredResults []domain.WidgetRef
	IsLoading       bool
	Error           string
	HasError        bool
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the widget id generator (uuid v4 by default)
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithEventBus makes the store publish a domain event for every applied mutation
func WithEventBus(bus eventbus.EventBus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

// Store is the single source of truth for the dashboard.
// Every mutation is applied under the write lock, so readers never observe
// a partially applied change.
type Store struct {
	mu sync.RWMutex

	seed       []domain.Category
	categories []domain.Category
	query      string
	filtered   []domain.WidgetRef
	loading    bool
	errMsg     string
	hasErr     bool

	newID func() string
	bus   eventbus.EventBus
}

// New creates a store initialised from seed. The seed is copied and kept
// untouched so ResetDashboard can always return to it.
func New(seed []domain.Category, opts ...Option) *Store {
	s := &Store{
		seed:  domain.CloneCategories(seed),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.categories = domain.CloneCategories(s.seed)
	s.filtered = []domain.WidgetRef{}
	return s
}

// AddWidget appends a new visible widget to the category.
// The store does not validate name or content; callers must.
func (s *Store) AddWidget(categoryID, name, content string) Result {
	s.mu.Lock()
	idx := s.categoryIndex(categoryID)
	if idx < 0 {
		s.mu.Unlock()
		log.WithField("category", categoryID).Debug("add widget: category not found")
		return Result{Status: StatusCategoryNotFound}
	}

	w := domain.Widget{
		ID:        s.newID(),
		Name:      name,
		Content:   content,
		IsVisible: true,
	}
	s.categories[idx].Widgets = append(s.categories[idx].Widgets, w)
	s.refilter()
	s.mu.Unlock()

	s.publish(domain.WidgetAddedEvent{CategoryID: categoryID, Widget: w})
	return Result{Status: StatusApplied, Widget: w}
}

// RemoveWidget excises the widget from its category
func (s *Store) RemoveWidget(categoryID, widgetID string) Status {
	s.mu.Lock()
	ci, wi, status := s.locate(categoryID, widgetID)
	if status != StatusApplied {
		s.mu.Unlock()
		return status
	}

	widgets := s.categories[ci].Widgets
	removed := widgets[wi]
	next := make([]domain.Widget, 0, len(widgets)-1)
	next = append(next, widgets[:wi]...)
	next = append(next, widgets[wi+1:]...)
	s.categories[ci].Widgets = next
	s.refilter()
	s.mu.Unlock()

	s.publish(domain.WidgetRemovedEvent{CategoryID: categoryID, WidgetID: widgetID, Name: removed.Name})
	return StatusApplied
}

// ToggleWidgetVisibility flips the widget's visibility flag
func (s *Store) ToggleWidgetVisibility(categoryID, widgetID string) Status {
	s.mu.Lock()
	ci, wi, status := s.locate(categoryID, widgetID)
	if status != StatusApplied {
		s.mu.Unlock()
		return status
	}

	w := &s.categories[ci].Widgets[wi]
	w.IsVisible = !w.IsVisible
	visible := w.IsVisible
	s.refilter()
	s.mu.Unlock()

	s.publish(domain.WidgetVisibilityChangedEvent{CategoryID: categoryID, WidgetID: widgetID, IsVisible: visible})
	return StatusApplied
}

// BulkToggleWidgets applies each update independently and in order.
// An update that misses does not stop the rest. The returned slice holds
// one status per update.
func (s *Store) BulkToggleWidgets(updates []domain.WidgetUpdate) []Status {
	statuses := make([]Status, len(updates))
	applied := 0

	s.mu.Lock()
	for i, u := range updates {
		ci, wi, status := s.locate(u.CategoryID, u.WidgetID)
		statuses[i] = status
		if status != StatusApplied {
			continue
		}
		s.categories[ci].Widgets[wi].IsVisible = u.IsVisible
		applied++
	}
	s.refilter()
	s.mu.Unlock()

	s.publish(domain.WidgetsBulkUpdatedEvent{Applied: applied, Skipped: len(updates) - applied})
	return statuses
}

// SetSearchQuery stores the raw query and recomputes the filtered results
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.refilter()
	matches := len(s.filtered)
	s.mu.Unlock()

	s.publish(domain.SearchQueryChangedEvent{Query: query, Matches: matches})
}

// ResetDashboard restores the categories to the seed and clears the search.
// Loading and error flags are left alone.
func (s *Store) ResetDashboard() {
	s.mu.Lock()
	s.categories = domain.CloneCategories(s.seed)
	s.query = ""
	s.filtered = []domain.WidgetRef{}
	s.mu.Unlock()

	s.publish(domain.DashboardResetEvent{})
}

// Reload replaces the seed with a freshly loaded one and resets to it
func (s *Store) Reload(seed []domain.Category) {
	s.mu.Lock()
	s.seed = domain.CloneCategories(seed)
	s.categories = domain.CloneCategories(s.seed)
	s.query = ""
	s.filtered = []domain.WidgetRef{}
	categories := len(s.categories)
	widgets := 0
	for _, c := range s.categories {
		widgets += len(c.Widgets)
	}
	s.mu.Unlock()

	s.publish(domain.DashboardReloadedEvent{Categories: categories, Widgets: widgets})
}

// SetLoading sets the loading flag
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	changed := s.loading != loading
	s.loading = loading
	s.mu.Unlock()

	if changed {
		s.publish(domain.LoadingChangedEvent{Loading: loading})
	}
}

// SetError records an operational error message
func (s *Store) SetError(message string) {
	s.mu.Lock()
	s.errMsg = message
	s.hasErr = true
	s.mu.Unlock()

	s.publish(domain.ErrorChangedEvent{Message: message})
}

// ClearError removes any recorded error
func (s *Store) ClearError() {
	s.mu.Lock()
	had := s.hasErr
	s.errMsg = ""
	s.hasErr = false
	s.mu.Unlock()

	if had {
		s.publish(domain.ErrorChangedEvent{})
	}
}

// Error returns the recorded error message, if any
func (s *Store) Error() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg, s.hasErr
}

// IsLoading reports the loading flag
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.WidgetRef, len(s.filtered))
	copy(filtered, s.filtered)

	return State{
		Categories:      domain.CloneCategories(s.categories),
		SearchQuery:     s.query,
		FilteredResults: filtered,
		IsLoading:       s.loading,
		Error:           s.errMsg,
		HasError:        s.hasErr,
	}
}

// categoryIndex must be called with the lock held
func (s *Store) categoryIndex(categoryID string) int {
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			return i
		}
	}
	return -1
}

// locate must be called with the lock held
func (s *Store) locate(categoryID, widgetID string) (int, int, Status) {
	ci := s.categoryIndex(categoryID)
	if ci < 0 {
		return -1, -1, StatusCategoryNotFound
	}
	for wi := range s.categories[ci].Widgets {
		if s.categories[ci].Widgets[wi].ID == widgetID {
			return ci, wi, StatusApplied
		}
	}
	return ci, -1, StatusWidgetNotFound
}

// refilter recomputes filtered results from categories and query.
// Must be called with the lock held.
func (s *Store) refilter() {
	s.filtered = Match(s.categories, s.query)
}

func (s *Store) publish(event domain.DomainEvent) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event)
}

// Match returns every widget whose name or content contains query,
// ignoring case, in category then insertion order. A blank query matches
// nothing. The query itself is matched untrimmed.
func Match(categories []domain.Category, query string) []domain.WidgetRef {
	results := []domain.WidgetRef{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	needle := strings.ToLower(query)
	for _, c := range categories {
		for _, w := range c.Widgets {
			if strings.Contains(strings.ToLower(w.Name), needle) ||
				strings.Contains(strings.ToLower(w.Content), needle) {
				results = append(results, domain.WidgetRef{
					Widget:       w,
					CategoryID:   c.ID,
					CategoryName: c.Name,
				})
			}
		}
	}
	return results
}
