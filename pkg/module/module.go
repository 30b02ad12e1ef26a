// Package module mounts self-contained HTTP modules under single-segment path prefixes.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/JaimeStill/assessor/pkg/middleware"
)

// Module serves an inner handler beneath a path prefix, stripping the prefix
// before dispatch and wrapping the handler with its own middleware stack.
type Module struct {
	prefix string
	inner  http.Handler
	stack  middleware.Stack

	once    sync.Once
	handler http.Handler
}

// New creates a Module for a single-level prefix such as "/api".
// It panics on an empty, relative, or nested prefix.
func New(prefix string, inner http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, inner: inner}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. It must be called before the module serves its first request.
func (m *Module) Use(mw middleware.Func) {
	m.stack.Use(mw)
}

// Handler returns the inner handler wrapped with the middleware stack, composed once.
func (m *Module) Handler() http.Handler {
	m.once.Do(func() {
		m.handler = m.stack.Then(m.inner)
	})
	return m.handler
}

// ServeHTTP dispatches req with the module prefix removed from its path.
func (m *Module) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	u := new(url.URL)
	*u = *req.URL
	u.Path = path
	u.RawPath = ""

	r := req.Clone(req.Context())
	r.URL = u
	return r
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be a single path segment: %s", prefix)
	}
	return nil
}
