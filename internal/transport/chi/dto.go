package chi

import (
	"time"

	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/listview/pagination"
	"github.com/payzee/dashboard/internal/domain/listview/state"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/usecase/listing"
)

// ListDefinition describes one list to clients.
type ListDefinition struct {
	Name         string   `json:"name"`
	FilterFields []string `json:"filter_fields"`
	SearchFields []string `json:"search_fields"`
	PageSize     int      `json:"page_size"`
	Remote       bool     `json:"remote"`
}

// ListsResponse is the body of GET /api/v1/lists.
type ListsResponse struct {
	Items []ListDefinition `json:"items"`
}

// ViewState is the client-held view state. TotalPages is informational
// and ignored on input.
type ViewState struct {
	Page       int               `json:"page"`
	Filters    map[string]string `json:"filters,omitempty"`
	Query      string            `json:"query"`
	TotalPages int               `json:"total_pages"`
}

// ViewResponse is one rendered page.
type ViewResponse struct {
	List         string            `json:"list"`
	Items        []record.Record   `json:"items"`
	State        ViewState         `json:"state"`
	PageSize     int               `json:"page_size"`
	TotalItems   int               `json:"total_items"`
	TotalPages   int               `json:"total_pages"`
	Pages        []pagination.Item `json:"pages"`
	HasPrev      bool              `json:"has_prev"`
	HasNext      bool              `json:"has_next"`
	Empty        bool              `json:"empty"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

// ActionRequest is one user event.
type ActionRequest struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
	Page  int    `json:"page,omitempty"`
}

// TransitionRequest is the body of POST /api/v1/lists/{list}/transitions.
type TransitionRequest struct {
	State  ViewState     `json:"state"`
	Action ActionRequest `json:"action"`
}

// TransitionResponse carries the next state and its rendered view.
type TransitionResponse struct {
	State ViewState    `json:"state"`
	View  ViewResponse `json:"view"`
}

// OptionsResponse lists dropdown values per filter field.
type OptionsResponse struct {
	List    string              `json:"list"`
	Options map[string][]string `json:"options"`
}

// LoadStatusResponse is the remote-fetch state of a list.
type LoadStatusResponse struct {
	List      string     `json:"list"`
	Phase     string     `json:"phase"`
	Source    string     `json:"source"`
	Error     string     `json:"error,omitempty"`
	Records   int        `json:"records"`
	Rejected  int        `json:"rejected"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ListSummary is one dashboard card.
type ListSummary struct {
	List      string                    `json:"list"`
	Total     int                       `json:"total"`
	Breakdown map[string]map[string]int `json:"breakdown"`
	Load      LoadStatusResponse        `json:"load"`
}

// DashboardResponse is the body of GET /api/v1/dashboard.
type DashboardResponse struct {
	Lists []ListSummary `json:"lists"`
}

// SchemeResponse is a scheme with its edit form pre-filled.
type SchemeResponse struct {
	Scheme scheme.Scheme `json:"scheme"`
	Form   scheme.Form   `json:"form"`
}

// ToggleTagRequest is the body of POST /api/v1/schemes/{id}/tags/toggle.
type ToggleTagRequest struct {
	Tag string `json:"tag"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func definitionToDTO(d listview.Definition) ListDefinition {
	return ListDefinition{
		Name:         d.Name,
		FilterFields: d.FilterFields,
		SearchFields: d.SearchFields,
		PageSize:     d.PageSize,
		Remote:       d.Remote,
	}
}

func stateToDTO(st state.State) ViewState {
	return ViewState{
		Page:       st.Page(),
		Filters:    st.FilterValues(),
		Query:      st.Query(),
		TotalPages: st.TotalPages(),
	}
}

func (v ViewState) query() listing.Query {
	return listing.Query{Page: v.Page, Filters: v.Filters, Search: v.Query}
}

func (a ActionRequest) toDomain() state.Action {
	return state.Action{Kind: state.Kind(a.Kind), Field: a.Field, Value: a.Value, Page: a.Page}
}

func viewToDTO(v listing.View) ViewResponse {
	items := v.Items
	if items == nil {
		items = []record.Record{}
	}
	return ViewResponse{
		List:         v.List,
		Items:        items,
		State:        stateToDTO(v.State),
		PageSize:     v.PageSize,
		TotalItems:   v.TotalItems,
		TotalPages:   v.TotalPages,
		Pages:        v.Pages,
		HasPrev:      v.HasPrev,
		HasNext:      v.HasNext,
		Empty:        v.Empty,
		EmptyMessage: v.EmptyMessage,
	}
}

func loadToDTO(list string, st load.State) LoadStatusResponse {
	resp := LoadStatusResponse{
		List:     list,
		Phase:    string(st.Phase),
		Source:   string(st.Source),
		Error:    st.Error,
		Records:  st.Records,
		Rejected: st.Rejected,
	}
	if !st.UpdatedAt.IsZero() {
		at := st.UpdatedAt.UTC()
		resp.UpdatedAt = &at
	}
	return resp
}
