// Package dashboard aggregates the admin overview counts.
package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/assessor/pkg/handlers"
	"github.com/JaimeStill/assessor/pkg/openapi"
	"github.com/JaimeStill/assessor/pkg/repository"
	"github.com/JaimeStill/assessor/pkg/routes"
)

// Counts is the admin overview.
type Counts struct {
	Responses         int `json:"responses"`
	ClientResponses   int `json:"client_responses"`
	Evaluations       int `json:"evaluations"`
	ScoredEvaluations int `json:"scored_evaluations"`
	ActiveSalesReps   int `json:"active_sales_reps"`
}

// System defines the public contract for the admin overview.
type System interface {
	Handler() *Handler
	Counts(ctx context.Context) (*Counts, error)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a dashboard system reading from db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "dashboard"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Counts runs every count concurrently on the pool. Any failure fails the whole overview.
func (r *repo) Counts(ctx context.Context) (*Counts, error) {
	var c Counts

	queries := []struct {
		name string
		sql  string
		dest *int
	}{
		{"responses", "SELECT COUNT(*) FROM responses", &c.Responses},
		{"client responses", "SELECT COUNT(*) FROM client_responses", &c.ClientResponses},
		{"evaluations", "SELECT COUNT(*) FROM title_officer_evaluations", &c.Evaluations},
		{"scored evaluations", "SELECT COUNT(*) FROM title_officer_evaluations WHERE scored_at IS NOT NULL", &c.ScoredEvaluations},
		{"active sales reps", "SELECT COUNT(*) FROM sales_reps WHERE is_active = true", &c.ActiveSalesReps},
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, q := range queries {
		g.Go(func() error {
			n, err := repository.QueryCount(gctx, r.db, q.sql)
			if err != nil {
				return fmt.Errorf("count %s: %w", q.name, err)
			}
			*q.dest = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Handler serves the admin overview.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a dashboard Handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the route group definition for the dashboard.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dashboard",
		Tags:   []string{"Dashboard"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get, OpenAPI: spec.Get},
		},
		Schemas: spec.Schemas,
	}
}

// Get returns the overview counts.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Counts(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, c)
}

var spec = struct {
	Get     *openapi.Operation
	Schemas map[string]*openapi.Schema
}{
	Get: &openapi.Operation{
		Summary: "Admin overview counts",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Overview counts", "DashboardCounts"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"DashboardCounts": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"responses":          {Type: "integer"},
				"client_responses":   {Type: "integer"},
				"evaluations":        {Type: "integer"},
				"scored_evaluations": {Type: "integer"},
				"active_sales_reps":  {Type: "integer"},
			},
		},
	},
}
