// Package state holds the immutable per-view UI state of a list and the pure
// reducer that moves it between states.
package state

import (
	"fmt"
	"slices"

	"github.com/payzee/dashboard/internal/domain/listview/filter"
)

// State is the view state of one list: current page, filter values, search
// query and the total page count observed at the last render.
type State struct {
	page       int
	filters    []filter.Spec
	query      string
	totalPages int
}

// New creates the initial state: page 1, every filter at "all", no query.
func New(fields []string) State {
	specs := make([]filter.Spec, len(fields))
	for i, f := range fields {
		specs[i] = filter.Any(f)
	}
	return State{page: 1, filters: specs}
}

// Restore rebuilds a state sent back by a client. Filter keys must be a
// subset of fields; omitted fields are "all". A page below 1 becomes 1.
func Restore(fields []string, page int, filters map[string]string, query string) (State, error) {
	for k := range filters {
		if !slices.Contains(fields, k) {
			return State{}, fmt.Errorf("unknown filter field %q", k)
		}
	}
	s := New(fields)
	for i, f := range fields {
		spec, err := filter.New(f, filters[f])
		if err != nil {
			return State{}, err
		}
		s.filters[i] = spec
	}
	s.page = max(page, 1)
	s.query = query
	return s, nil
}

// Page returns the current 1-indexed page.
func (s State) Page() int { return s.page }

// Query returns the raw search query.
func (s State) Query() string { return s.query }

// TotalPages returns the page count seen at the last render.
func (s State) TotalPages() int { return s.totalPages }

// Filters returns a copy of the filter specs in declaration order.
func (s State) Filters() []filter.Spec {
	return slices.Clone(s.filters)
}

// FilterValues returns the filter values keyed by field.
func (s State) FilterValues() map[string]string {
	m := make(map[string]string, len(s.filters))
	for _, f := range s.filters {
		m[f.Field()] = f.Value()
	}
	return m
}

// WithTotalPages returns a copy that records the derived page count.
func (s State) WithTotalPages(n int) State {
	s.filters = slices.Clone(s.filters)
	s.totalPages = max(n, 0)
	return s
}

// Clamp returns a copy whose page lies in [1, max(total, 1)] and whose
// page count is total. A result set that shrank below the current page
// therefore lands on its last page instead of rendering a blank one.
func (s State) Clamp(total int) State {
	s = s.WithTotalPages(total)
	if s.page > s.totalPages {
		s.page = s.totalPages
	}
	if s.page < 1 {
		s.page = 1
	}
	return s
}
