package dashboard

import (
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/listview/state"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/usecase/listing"
)

// List names.
const (
	Schemes       = "schemes"
	Beneficiaries = "beneficiaries"
	Vendors       = "vendors"
	Transactions  = "transactions"
)

type (
	// Definition describes one list: its filter and search fields and page size.
	Definition = listview.Definition
	// Query is a serialized view state: page, filter values and search text.
	Query = listing.Query
	// View is one rendered page of a list.
	View = listing.View
	// Action is one user event applied by Transition.
	Action = state.Action
	// LoadState is the remote-fetch state of a list.
	LoadState = load.State
	// Summary holds per-list totals and breakdowns.
	Summary = listing.Summary
	// Scheme is a benefits scheme.
	Scheme = scheme.Scheme
	// SchemeForm holds the editable fields of a scheme.
	SchemeForm = scheme.Form
)

// Action kinds.
const (
	SetFilter = state.SetFilter
	SetQuery  = state.SetQuery
	GoToPage  = state.GoToPage
	PrevPage  = state.PrevPage
	NextPage  = state.NextPage
)

// Load phases and sources.
const (
	Idle    = load.Idle
	Loading = load.Loading
	Loaded  = load.Loaded
	Failed  = load.Failed

	FromSample   = load.SourceSample
	FromLedger   = load.SourceLedger
	FromSnapshot = load.SourceSnapshot
)

// QueryOf returns the query that reproduces v's state.
func QueryOf(v View) Query {
	return Query{
		Page:    v.State.Page(),
		Filters: v.State.FilterValues(),
		Search:  v.State.Query(),
	}
}
