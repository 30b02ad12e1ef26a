package catalog

import (
	"net/http"

	"github.com/JaimeStill/assessor/pkg/handlers"
	"github.com/JaimeStill/assessor/pkg/openapi"
	"github.com/JaimeStill/assessor/pkg/routes"
)

// View is the catalog as published to form renderers.
type View struct {
	Version        string      `json:"version"`
	TotalQuestions int         `json:"total_questions"`
	Tools          []Tool      `json:"tools"`
	Dimensions     []Dimension `json:"dimensions"`
	RatingRange    [2]int      `json:"rating_range"`
}

// Current returns the catalog view.
func Current() View {
	return View{
		Version:        Version,
		TotalQuestions: TotalQuestions(),
		Tools:          Tools(),
		Dimensions:     Dimensions(),
		RatingRange:    [2]int{MinRating, MaxRating},
	}
}

// Handler serves the catalog.
type Handler struct{}

// NewHandler creates a catalog Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns the route group definition for catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/catalog",
		Tags:   []string{"Catalog"},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: h.Get,
				OpenAPI: &openapi.Operation{
					Summary: "Get the capability survey catalog",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Tools, questions, and confidence dimensions", "Catalog"),
					},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Catalog": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"version":         {Type: "string"},
					"total_questions": {Type: "integer"},
					"tools":           {Type: "array", Items: &openapi.Schema{Type: "object"}},
					"dimensions":      {Type: "array", Items: &openapi.Schema{Type: "object"}},
					"rating_range":    {Type: "array", Items: &openapi.Schema{Type: "integer"}},
				},
			},
		},
	}
}

// Get returns the current catalog.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Current())
}
