package donations

import (
	"context"
	"encoding/json"
	"net/http"

	donationstore "github.com/mahmudul-dev/bloodlink/internal/app/store/donations"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// setStatusRequest is the JSON body for PATCH /donation-request/status/{id}.
type setStatusRequest struct {
	Status string `json:"status"`
}

// HandleStatus handles PATCH /donation-request/status/{id}.
//
// The new status must be a known status and an allowed move from the
// request's current one (pending may go inprogress or canceled; inprogress
// may go done or canceled; done and canceled are terminal).
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request id"})
		return
	}

	var body setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Donations.SetStatus(ctx, id, body.Status)
	if err != nil {
		h.writeTransitionError(w, "status update", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  updateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount},
	})
}

// confirmRequest is the JSON body for PATCH /donation-request/confirm/{id}.
type confirmRequest struct {
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}

// HandleConfirm handles PATCH /donation-request/confirm/{id}.
//
// A donor accepts the request: status moves to inprogress and the donor
// identity is attached. Confirming again replaces the attached donor; the
// request holds exactly one donor at a time.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request id"})
		return
	}

	var body confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}
	if body.DonorName == "" || body.DonorEmail == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "donorName and donorEmail are required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Donations.Confirm(ctx, id, body.DonorName, body.DonorEmail)
	if err != nil {
		h.writeTransitionError(w, "confirm", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  updateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount},
	})
}

func (h *Handler) writeTransitionError(w http.ResponseWriter, op string, err error) {
	switch err {
	case donationstore.ErrBadStatus:
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid status"})
	case donationstore.ErrBadTransition:
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Status transition not allowed"})
	case mongo.ErrNoDocuments:
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Donation request not found"})
	default:
		h.serverError(w, op, err)
	}
}
