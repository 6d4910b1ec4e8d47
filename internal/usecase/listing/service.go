// Package listing serves rendered list views, view-state transitions,
// filter options and the dashboard summary over the catalog.
package listing

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/listview/state"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/metrics"
)

// Query is a client's view state as sent over the wire.
type Query struct {
	Page    int
	Filters map[string]string
	Search  string
}

// View is a rendered page of any list.
type View = listview.View[record.Record]

// Service handles list-view operations.
type Service struct {
	catalog *Catalog
}

// New creates a listing service.
func New(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Lists returns every list definition.
func (s *Service) Lists(_ context.Context) []listview.Definition {
	return s.catalog.Definitions()
}

// View renders the page described by q.
func (s *Service) View(_ context.Context, list string, q Query) (View, error) {
	snap, err := s.catalog.Snapshot(list)
	if err != nil {
		return View{}, err
	}
	st, err := restore(snap.Definition, q)
	if err != nil {
		return View{}, err
	}

	v, err := listview.Render(snap.Definition, snap.Records, st)
	if err != nil {
		return View{}, fmt.Errorf("render %s: %w", list, err)
	}
	observe(v)
	return v, nil
}

// Transition applies action to the state described by q and renders the
// result.
func (s *Service) Transition(_ context.Context, list string, q Query, action state.Action) (View, error) {
	snap, err := s.catalog.Snapshot(list)
	if err != nil {
		return View{}, err
	}
	st, err := restore(snap.Definition, q)
	if err != nil {
		return View{}, err
	}

	v, err := listview.Transition(snap.Definition, snap.Records, st, action)
	if err != nil {
		return View{}, fmt.Errorf("transition %s: %w", list, err)
	}
	observe(v)
	return v, nil
}

// Options returns the filter dropdown values of list.
func (s *Service) Options(_ context.Context, list string) (map[string][]string, error) {
	snap, err := s.catalog.Snapshot(list)
	if err != nil {
		return nil, err
	}
	return listview.Options(snap.Definition, snap.Records), nil
}

// LoadState returns the remote-fetch state of list.
func (s *Service) LoadState(_ context.Context, list string) (load.State, error) {
	snap, err := s.catalog.Snapshot(list)
	if err != nil {
		return load.State{}, err
	}
	return snap.Load, nil
}

// Scheme returns one scheme by id.
func (s *Service) Scheme(_ context.Context, id int) (scheme.Scheme, error) {
	snap, err := s.catalog.Snapshot(scheme.List.Name)
	if err != nil {
		return scheme.Scheme{}, err
	}
	key := strconv.Itoa(id)
	i := slices.IndexFunc(snap.Records, func(r record.Record) bool { return r.Key() == key })
	if i < 0 {
		return scheme.Scheme{}, fmt.Errorf("scheme %d: %w", id, domain.ErrNotFound)
	}
	sc, ok := snap.Records[i].(scheme.Scheme)
	if !ok {
		return scheme.Scheme{}, fmt.Errorf("scheme %d: unexpected record type %T", id, snap.Records[i])
	}
	return sc, nil
}

// UpdateScheme applies an edit form to a scheme.
func (s *Service) UpdateScheme(_ context.Context, id int, form scheme.Form) (scheme.Scheme, error) {
	return s.editScheme(id, func(sc scheme.Scheme) (scheme.Scheme, error) {
		return sc.Apply(form)
	})
}

// ToggleSchemeTag adds tag to the scheme's eligibility tags, or removes it
// when already present.
func (s *Service) ToggleSchemeTag(_ context.Context, id int, tag string) (scheme.Scheme, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return scheme.Scheme{}, fmt.Errorf("toggle tag on scheme %d: %w", id, domain.NewFieldError("tags", "must not be blank"))
	}
	return s.editScheme(id, func(sc scheme.Scheme) (scheme.Scheme, error) {
		sc.Eligibility = sc.Eligibility.ToggleTag(tag)
		return sc, nil
	})
}

func (s *Service) editScheme(id int, edit func(scheme.Scheme) (scheme.Scheme, error)) (scheme.Scheme, error) {
	updated, err := s.catalog.Update(scheme.List.Name, strconv.Itoa(id), func(r record.Record) (record.Record, error) {
		sc, ok := r.(scheme.Scheme)
		if !ok {
			return nil, fmt.Errorf("scheme %d: unexpected record type %T", id, r)
		}
		next, err := edit(sc)
		if err != nil {
			return nil, fmt.Errorf("update scheme %d: %w", id, err)
		}
		return next, nil
	})
	if err != nil {
		return scheme.Scheme{}, err
	}
	return updated.(scheme.Scheme), nil
}

func restore(def listview.Definition, q Query) (state.State, error) {
	st, err := state.Restore(def.FilterFields, q.Page, q.Filters, q.Search)
	if err != nil {
		return state.State{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return st, nil
}

func observe(v View) {
	outcome := "rows"
	if v.Empty {
		outcome = "empty"
	}
	metrics.ListViewsTotal.WithLabelValues(v.List, outcome).Inc()
}
