package clientresponses

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/handlers"
	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/routes"
)

// Handler provides HTTP endpoints for client survey submissions.
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
		logger:     logger.With("handler", "clientresponses"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for client response endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/client-responses",
		Tags:   []string{"Client Responses"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit, OpenAPI: spec.Submit},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "GET", Pattern: "/timelines", Handler: h.Timelines, OpenAPI: spec.Timelines},
			{Method: "GET", Pattern: "/needs", Handler: h.Needs, OpenAPI: spec.Needs},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: spec.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search, OpenAPI: spec.Search},
		},
		Schemas: spec.Schemas,
	}
}

// Submit scores and stores a client survey.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var cmd SubmitCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	receipt, err := h.sys.Submit(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, receipt)
}

// List returns a page of client responses, optionally narrowed to one rep with ?rep=<slug>.
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

// Find returns a single client response by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	resp, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching responses.
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

// Timelines returns the published timeline choices.
func (h *Handler) Timelines(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Timelines())
}

// Needs returns the needs assessment flags with display labels.
func (h *Handler) Needs(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, NeedOptions())
}
