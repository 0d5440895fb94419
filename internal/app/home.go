package app

import (
	"context"
	"sync"

	"karilike/internal/adapters/observability"
	"karilike/internal/catalog"
	"karilike/internal/domain"
	"karilike/internal/i18n"
)

// HomeView is the home page list state.
type HomeView struct {
	cat    *catalog.Catalog
	search *SearchService

	mu        sync.Mutex
	seq       uint64
	displayed []domain.Property
	filtered  bool
	active    *domain.Category
}

type HomeState struct {
	Properties     []domain.Property
	Filtered       bool
	ActiveCategory *domain.Category
}

// SearchOutcome is the result of ApplySearch. A Stale outcome was overtaken
// by a newer search and did not change the view.
type SearchOutcome struct {
	HomeState
	Stale bool
}

func NewHomeView(c *catalog.Catalog, s *SearchService) *HomeView {
	return &HomeView{cat: c, search: s, displayed: c.All()}
}

func (h *HomeView) State() HomeState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stateLocked()
}

// ToggleCategory narrows to c, or restores the full catalog when c is
// already active. It also invalidates any search still in flight.
func (h *HomeView) ToggleCategory(c domain.Category) HomeState {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	if h.active != nil && *h.active == c {
		h.resetLocked()
		return h.stateLocked()
	}
	cat := c
	h.active = &cat
	h.displayed = h.cat.ByCategory(c)
	h.filtered = true
	return h.stateLocked()
}

// ApplySearch runs the pipeline over the full catalog and commits the result
// unless a newer search, toggle or clear happened meanwhile.
func (h *HomeView) ApplySearch(ctx context.Context, q Query) (SearchOutcome, error) {
	h.mu.Lock()
	h.seq++
	token := h.seq
	h.mu.Unlock()

	res, err := h.search.Search(ctx, q, h.cat.All())
	if err != nil {
		return SearchOutcome{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if token != h.seq {
		observability.ObserveSearch("view", "stale")
		return SearchOutcome{HomeState: h.stateLocked(), Stale: true}, nil
	}
	h.displayed = res
	h.filtered = true
	h.active = nil
	return SearchOutcome{HomeState: h.stateLocked()}, nil
}

// Clear restores the full catalog.
func (h *HomeView) Clear() HomeState {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	h.resetLocked()
	return h.stateLocked()
}

// Heading returns the translated list title and subtitle.
func (h *HomeView) Heading(tr *i18n.Store) (title, subtitle string) {
	st := h.State()
	if st.Filtered {
		return tr.T(i18n.KeySearchResults, nil),
			tr.T(i18n.KeyFoundProperties, i18n.Params{"count": len(st.Properties)})
	}
	return tr.T(i18n.KeyFeaturedProperties, nil), tr.T(i18n.KeyHandpicked, nil)
}

func (h *HomeView) resetLocked() {
	h.displayed = h.cat.All()
	h.filtered = false
	h.active = nil
}

func (h *HomeView) stateLocked() HomeState {
	st := HomeState{
		Properties: make([]domain.Property, len(h.displayed)),
		Filtered:   h.filtered,
	}
	for i, p := range h.displayed {
		st.Properties[i] = p.Clone()
	}
	if h.active != nil {
		c := *h.active
		st.ActiveCategory = &c
	}
	return st
}
