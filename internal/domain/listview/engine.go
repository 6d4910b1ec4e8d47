package listview

import (
	"fmt"
	"slices"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview/filter"
	"github.com/payzee/dashboard/internal/domain/listview/pagination"
	"github.com/payzee/dashboard/internal/domain/listview/search"
	"github.com/payzee/dashboard/internal/domain/listview/state"
	"github.com/payzee/dashboard/internal/domain/record"
)

// View is one rendered page of a list plus everything needed to draw its
// pagination controls.
type View[T record.Record] struct {
	List         string
	Items        []T
	State        state.State
	PageSize     int
	TotalItems   int
	TotalPages   int
	Pages        []pagination.Item
	HasPrev      bool
	HasNext      bool
	Empty        bool
	EmptyMessage string
}

// Apply keeps the records that pass every filter and then the search.
// Input order is preserved.
func Apply[T record.Record](records []T, filters []filter.Spec, q search.Spec) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !filter.MatchesAll(r, filters) {
			continue
		}
		if !q.Matches(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Render runs the pipeline for st and returns the visible page. The
// returned view carries st clamped to the result: a page past the end
// becomes the last page.
func Render[T record.Record](def Definition, records []T, st state.State) (View[T], error) {
	q, err := search.New(st.Query(), def.SearchFields)
	if err != nil {
		return View[T]{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}

	filtered := Apply(records, st.Filters(), q)
	total := pagination.TotalPages(len(filtered), def.PageSize)
	st = st.Clamp(total)
	page := pagination.Paginate(filtered, def.PageSize, st.Page())

	v := View[T]{
		List:       def.Name,
		Items:      page.Items,
		State:      st,
		PageSize:   def.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Pages:      pagination.PageNumbers(st.Page(), total),
		HasPrev:    pagination.HasPrev(st.Page()),
		HasNext:    pagination.HasNext(st.Page(), total),
	}
	if len(filtered) == 0 {
		v.Empty = true
		v.EmptyMessage = def.EmptyMessage(q.Query())
	}
	return v, nil
}

// Transition renders st to learn the page count, applies a, and renders
// the resulting state.
func Transition[T record.Record](def Definition, records []T, st state.State, a state.Action) (View[T], error) {
	if err := a.Validate(); err != nil {
		return View[T]{}, fmt.Errorf("%w: %w", domain.ErrInvalidAction, err)
	}
	if a.Kind == state.SetFilter && !def.HasFilter(a.Field) {
		return View[T]{}, fmt.Errorf("%w: list %s has no filter %q", domain.ErrInvalidAction, def.Name, a.Field)
	}

	current, err := Render(def, records, st)
	if err != nil {
		return View[T]{}, err
	}
	return Render(def, records, state.Reduce(current.State, a))
}

// Options returns the distinct values of each filterable field, sorted.
// Array fields contribute each element.
func Options[T record.Record](def Definition, records []T) map[string][]string {
	opts := make(map[string][]string, len(def.FilterFields))
	for _, f := range def.FilterFields {
		seen := make(map[string]struct{})
		values := []string{}
		for _, r := range records {
			for _, el := range r.Field(f).Elements() {
				if el == "" {
					continue
				}
				if _, ok := seen[el]; ok {
					continue
				}
				seen[el] = struct{}{}
				values = append(values, el)
			}
		}
		slices.Sort(values)
		opts[f] = values
	}
	return opts
}
