package routes

import (
	"net/http"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler.
// OpenAPI is optional and is only used when generating the API document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
