// Package middleware provides composable HTTP middleware for the API module.
package middleware

import "net/http"

// Func wraps an http.Handler with additional behavior.
type Func func(http.Handler) http.Handler

// Stack is an ordered list of middleware. The first entry added is the outermost.
type Stack []Func

// Use appends mw to the stack.
func (s *Stack) Use(mw Func) {
	*s = append(*s, mw)
}

// Then wraps h with every middleware in the stack.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}
