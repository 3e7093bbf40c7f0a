// Package home serves the root liveness endpoint.
package home

import (
	"net/http"

	"go.uber.org/zap"
)

// livenessMessage is the plain-text body served at the root. Uptime checks
// on existing deployments match on this exact string.
const livenessMessage = "Blood Connection Successfully Complete"

// Handler serves the public root page.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a home handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET /.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(livenessMessage))
}
