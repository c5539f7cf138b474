// Package handler implements the HTTP handlers for the breach monitoring API.
package handler

import (
	"net/http"

	"breachwatch/internal/auth"
	"breachwatch/internal/monitor"
	"breachwatch/pkg/serrors"
)

// ErrMissingField indicates a request body with a required field absent or
// empty. The kind string is the stable status code surfaced to clients.
var ErrMissingField = serrors.NewKind("MISSING_FIELD") //nolint: gochecknoglobals

// Deps bundles the services the handlers dispatch to.
type Deps struct {
	Auth    auth.Service
	Monitor monitor.Monitor
}

// Handler holds the HTTP handlers for the public API.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every API route on the mux. Routes below requireAuth resolve
// the bearer token to a user before the handler runs.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)

	mux.Handle("GET /items", h.requireAuth(http.HandlerFunc(h.listItems)))
	mux.Handle("POST /items", h.requireAuth(http.HandlerFunc(h.addItem)))
	mux.Handle("POST /items/check", h.requireAuth(http.HandlerFunc(h.checkItems)))
	mux.Handle("GET /events", h.requireAuth(http.HandlerFunc(h.listEvents)))
}
