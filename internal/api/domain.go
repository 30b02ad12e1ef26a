package api

import (
	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/clientresponses"
	"github.com/JaimeStill/assessor/internal/config"
	"github.com/JaimeStill/assessor/internal/dashboard"
	"github.com/JaimeStill/assessor/internal/evaluations"
	"github.com/JaimeStill/assessor/internal/exports"
	"github.com/JaimeStill/assessor/internal/infrastructure"
	"github.com/JaimeStill/assessor/internal/responses"
	"github.com/JaimeStill/assessor/internal/salesreps"
	"github.com/JaimeStill/assessor/pkg/routes"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Catalog         *catalog.Handler
	SalesReps       salesreps.System
	Responses       responses.System
	ClientResponses clientresponses.System
	Evaluations     evaluations.System
	Dashboard       dashboard.System
	Exports         exports.System
}

// NewDomain creates all domain systems over the shared pool. Every system
// logs under module=api and pages with the API pagination limits.
func NewDomain(cfg *config.Config, infra *infrastructure.Infrastructure) *Domain {
	db := infra.Database.Connection()
	logger := infra.Logger.With("module", "api")
	page := cfg.API.Pagination

	reps := salesreps.New(db, logger, page)

	return &Domain{
		Catalog:         catalog.NewHandler(),
		SalesReps:       reps,
		Responses:       responses.New(db, logger, page),
		ClientResponses: clientresponses.New(db, reps, logger, page),
		Evaluations:     evaluations.New(db, logger, page),
		Dashboard:       dashboard.New(db, logger),
		Exports:         exports.New(db, infra.Storage, logger, cfg.Storage.MaxListSize),
	}
}

func (d *Domain) groups() []routes.Group {
	return []routes.Group{
		d.Catalog.Routes(),
		d.SalesReps.Handler().Routes(),
		d.Responses.Handler().Routes(),
		d.ClientResponses.Handler().Routes(),
		d.Evaluations.Handler().Routes(),
		d.Dashboard.Handler().Routes(),
		d.Exports.Handler().Routes(),
	}
}
