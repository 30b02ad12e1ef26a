package routes

import (
	"net/http"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

// Group collects routes under a shared path prefix. Tags and Schemas feed the
// API document; Children nest beneath Prefix.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
	Schemas  map[string]*openapi.Schema
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

// Describe adds every documented route in groups to spec, prefixing paths with basePath.
// Group tags are applied to operations that declare none, and group schemas are merged
// into the spec components.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, basePath, group)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix

	if len(group.Schemas) > 0 {
		spec.Components.AddSchemas(group.Schemas)
	}
	for _, tag := range group.Tags {
		spec.AddTag(tag)
	}

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}

		path := openapiPath(fullPrefix + route.Pattern)
		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}

		switch route.Method {
		case http.MethodGet:
			item.Get = op
		case http.MethodPost:
			item.Post = op
		case http.MethodPut:
			item.Put = op
		case http.MethodDelete:
			item.Delete = op
		}
	}

	for _, child := range group.Children {
		describeGroup(spec, fullPrefix, child)
	}
}

// openapiPath converts ServeMux wildcards ({key...}) to OpenAPI path templates ({key}).
func openapiPath(pattern string) string {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '.' && i+3 < len(pattern) && pattern[i:i+4] == "...}" {
			out = append(out, '}')
			i += 3
			continue
		}
		out = append(out, pattern[i])
	}
	if len(out) == 0 {
		return "/"
	}
	return string(out)
}
