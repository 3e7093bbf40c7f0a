package users

import (
	"context"
	"encoding/json"
	"net/http"

	userstore "github.com/mahmudul-dev/bloodlink/internal/app/store/users"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// updateProfileRequest is the JSON body for PATCH /user/{email}. Pointer
// fields distinguish "absent" from "set to empty": only supplied fields are
// written, so a partial update no longer erases the rest of the profile.
type updateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	District    *string `json:"district"`
	Upazila     *string `json:"upazila"`
	BloodGroup  *string `json:"bloodGroup"`
	PhotoURL    *string `json:"photoURL"`
}

// updateAck mirrors the write acknowledgment shape callers already consume.
type updateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// HandleUpdateProfile handles PATCH /user/{email}.
//
// A no-match update is reported as success with zero counts, not an error.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var body updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Users.UpdateProfile(ctx, email, userstore.ProfileUpdate{
		DisplayName: body.DisplayName,
		District:    body.District,
		Upazila:     body.Upazila,
		BloodGroup:  body.BloodGroup,
		PhotoURL:    body.PhotoURL,
	})
	if err != nil {
		h.serverError(w, "profile update", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  updateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount},
	})
}
