package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/assessor/internal/config"
	"github.com/JaimeStill/assessor/pkg/openapi"
	"github.com/JaimeStill/assessor/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	groups := domain.groups()
	routes.Register(mux, groups...)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.OpenAPI.Server(cfg.API.BasePath))
	routes.Describe(spec, "", groups...)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
