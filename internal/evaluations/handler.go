package evaluations

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/handlers"
	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/routes"
)

// Handler provides HTTP endpoints for title officer evaluations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "evaluations"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for evaluation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/evaluations",
		Tags:   []string{"Evaluations"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: spec.Create},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "GET", Pattern: "/sections", Handler: h.Sections, OpenAPI: spec.Sections},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: spec.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search, OpenAPI: spec.Search},
			{Method: "PUT", Pattern: "/{id}/score", Handler: h.Score, OpenAPI: spec.Score},
		},
		Schemas: spec.Schemas,
	}
}

// Create stores a title officer self-evaluation.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	e, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, e)
}

// Score replaces the executive scoring of an evaluation.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var cmd ScoreCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	e, err := h.sys.Score(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, e)
}

// List returns a page of evaluations, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single evaluation by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	e, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, e)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching evaluations.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Sections returns the evaluation form definition.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Sections())
}
