package state

import (
	"fmt"

	"github.com/payzee/dashboard/internal/domain/listview/filter"
)

// Kind identifies a user action on a list view.
type Kind string

// Supported actions.
const (
	SetFilter Kind = "set_filter"
	SetQuery  Kind = "set_query"
	GoToPage  Kind = "go_to_page"
	PrevPage  Kind = "prev_page"
	NextPage  Kind = "next_page"
)

// IsValid reports whether k is a known action kind.
func (k Kind) IsValid() bool {
	switch k {
	case SetFilter, SetQuery, GoToPage, PrevPage, NextPage:
		return true
	}
	return false
}

// Action is a single user event.
type Action struct {
	Kind  Kind
	Field string
	Value string
	Page  int
}

// Validate checks that the action carries the arguments its kind needs.
func (a Action) Validate() error {
	if !a.Kind.IsValid() {
		return fmt.Errorf("unknown action %q", a.Kind)
	}
	if a.Kind == SetFilter && a.Field == "" {
		return fmt.Errorf("set_filter requires a field")
	}
	return nil
}

// Reduce applies a to s and returns the next state. It never mutates s.
//
// Filter and query changes reset the page to 1. Page moves outside
// [1, TotalPages] are ignored, matching disabled controls. Unknown filter
// fields and invalid actions leave the state unchanged.
func Reduce(s State, a Action) State {
	next := s.WithTotalPages(s.totalPages)

	switch a.Kind {
	case SetFilter:
		for i, f := range next.filters {
			if f.Field() != a.Field {
				continue
			}
			spec, err := filter.New(a.Field, a.Value)
			if err != nil {
				return s
			}
			next.filters[i] = spec
			next.page = 1
			return next
		}
		return s
	case SetQuery:
		next.query = a.Value
		next.page = 1
		return next
	case GoToPage:
		if a.Page < 1 || a.Page > s.totalPages {
			return s
		}
		next.page = a.Page
		return next
	case PrevPage:
		if s.page <= 1 {
			return s
		}
		next.page = s.page - 1
		return next
	case NextPage:
		if s.totalPages == 0 || s.page >= s.totalPages {
			return s
		}
		next.page = s.page + 1
		return next
	}
	return s
}
