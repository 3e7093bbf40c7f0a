package donations

import (
	"context"
	"net/http"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete handles DELETE /donation-request/{id}.
//
// A deleted count of zero (no such request) is still reported as success.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Donations.Delete(ctx, id)
	if err != nil {
		h.serverError(w, "delete", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  deleteAck{DeletedCount: count},
	})
}
