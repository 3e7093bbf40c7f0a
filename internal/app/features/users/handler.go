// Package users serves the user-facing HTTP surface: registration, listing,
// role lookup and administration, profile updates, and donor search.
package users

import (
	"encoding/json"
	"net/http"

	userstore "github.com/mahmudul-dev/bloodlink/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for user endpoints.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Log:   logger,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// serverError logs the failure and writes the generic 500 payload. Store
// faults never leak their details to the caller.
func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.Log.Error("users: "+op+" failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
}
