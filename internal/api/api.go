// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/assessor/internal/config"
	"github.com/JaimeStill/assessor/internal/infrastructure"
	"github.com/JaimeStill/assessor/pkg/middleware"
	"github.com/JaimeStill/assessor/pkg/module"
)

// NewModule mounts every domain handler plus /openapi.json under the API
// base path. Requests pass CORS, then the body limit, then the request log.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	mux := http.NewServeMux()
	if err := registerRoutes(mux, NewDomain(cfg, infra), cfg); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))
	m.Use(middleware.Logger(infra.Logger.With("module", "api")))

	return m, nil
}
