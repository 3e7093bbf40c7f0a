// Package donations serves the donation-request HTTP surface: creation,
// owner listing with pagination, deletion, status transitions, donor
// confirmation, and the pending queue.
package donations

import (
	"encoding/json"
	"net/http"

	donationstore "github.com/mahmudul-dev/bloodlink/internal/app/store/donations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for donation-request endpoints.
type Handler struct {
	Donations *donationstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a donations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Donations: donationstore.New(db),
		Log:       logger,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.Log.Error("donations: "+op+" failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
}

// updateAck mirrors the write acknowledgment shape callers already consume.
type updateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// deleteAck is the acknowledgment for delete operations.
type deleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}
