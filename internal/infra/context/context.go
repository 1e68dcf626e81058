// Package context carries request-scoped values (request ID, session user)
// across component boundaries without widening function signatures.
package context

type contextKey string
