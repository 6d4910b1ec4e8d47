package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/domain/scheme"
	healthuc "github.com/payzee/dashboard/internal/usecase/health"
	"github.com/payzee/dashboard/internal/usecase/listing"
	"github.com/payzee/dashboard/internal/usecase/source"
)

const maxBodyBytes = 1 << 20

// Server serves the dashboard REST API.
type Server struct {
	lists         *listing.Service
	sources       *source.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	lists *listing.Service,
	sources *source.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		lists:         lists,
		sources:       sources,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.Dashboard)
		r.Get("/lists", s.ListLists)
		r.Route("/lists/{list}", func(r chi.Router) {
			r.Get("/", s.GetView)
			r.Get("/options", s.GetOptions)
			r.Post("/transitions", s.Transition)
			r.Get("/status", s.GetLoadStatus)
			r.Post("/reload", s.Reload)
		})
		r.Get("/schemes/{id}", s.GetScheme)
		r.Put("/schemes/{id}", s.UpdateScheme)
		r.Post("/schemes/{id}/tags/toggle", s.ToggleSchemeTag)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})
}

// ListLists handles GET /api/v1/lists.
func (s *Server) ListLists(w http.ResponseWriter, r *http.Request) {
	defs := s.lists.Lists(r.Context())
	items := make([]ListDefinition, len(defs))
	for i, d := range defs {
		items[i] = definitionToDTO(d)
	}
	writeJSON(w, http.StatusOK, ListsResponse{Items: items})
}

// GetView handles GET /api/v1/lists/{list}.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	def, err := findDefinition(s.lists.Lists(r.Context()), list)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	q, err := bindViewQuery(r, def)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	v, err := s.lists.View(r.Context(), list, q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToDTO(v))
}

// Transition handles POST /api/v1/lists/{list}/transitions.
func (s *Server) Transition(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := s.lists.Transition(r.Context(), chi.URLParam(r, "list"), req.State.query(), req.Action.toDomain())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	dto := viewToDTO(v)
	writeJSON(w, http.StatusOK, TransitionResponse{State: dto.State, View: dto})
}

// GetOptions handles GET /api/v1/lists/{list}/options.
func (s *Server) GetOptions(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	opts, err := s.lists.Options(r.Context(), list)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, OptionsResponse{List: list, Options: opts})
}

// GetLoadStatus handles GET /api/v1/lists/{list}/status.
func (s *Server) GetLoadStatus(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	st, err := s.lists.LoadState(r.Context(), list)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadToDTO(list, st))
}

// Reload handles POST /api/v1/lists/{list}/reload. The fetch runs in the
// background; poll the status endpoint for its outcome.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	st, err := s.sources.Reload(r.Context(), list)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/v1/lists/%s/status", list))
	writeJSON(w, http.StatusAccepted, loadToDTO(list, st))
}

// GetScheme handles GET /api/v1/schemes/{id}.
func (s *Server) GetScheme(w http.ResponseWriter, r *http.Request) {
	id, ok := schemeID(w, r)
	if !ok {
		return
	}
	sc, err := s.lists.Scheme(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SchemeResponse{Scheme: sc, Form: scheme.FormOf(sc)})
}

// UpdateScheme handles PUT /api/v1/schemes/{id}.
func (s *Server) UpdateScheme(w http.ResponseWriter, r *http.Request) {
	id, ok := schemeID(w, r)
	if !ok {
		return
	}
	var form scheme.Form
	if !decodeBody(w, r, &form) {
		return
	}

	sc, err := s.lists.UpdateScheme(r.Context(), id, form)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SchemeResponse{Scheme: sc, Form: scheme.FormOf(sc)})
}

// ToggleSchemeTag handles POST /api/v1/schemes/{id}/tags/toggle.
func (s *Server) ToggleSchemeTag(w http.ResponseWriter, r *http.Request) {
	id, ok := schemeID(w, r)
	if !ok {
		return
	}
	var req ToggleTagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sc, err := s.lists.ToggleSchemeTag(r.Context(), id, req.Tag)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SchemeResponse{Scheme: sc, Form: scheme.FormOf(sc)})
}

// Dashboard handles GET /api/v1/dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.lists.Summary(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := DashboardResponse{Lists: make([]ListSummary, len(sum.Lists))}
	for i, ls := range sum.Lists {
		resp.Lists[i] = ListSummary{
			List:      ls.List,
			Total:     ls.Total,
			Breakdown: ls.Breakdown,
			Load:      loadToDTO(ls.List, ls.Load),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	// Degraded still serves fallback data, so it stays 200.
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func schemeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "scheme id must be a positive integer")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
