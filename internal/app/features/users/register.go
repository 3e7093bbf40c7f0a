package users

import (
	"context"
	"encoding/json"
	"net/http"

	userstore "github.com/mahmudul-dev/bloodlink/internal/app/store/users"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/mahmudul-dev/bloodlink/internal/domain/models"
)

// registerRequest is the JSON body for POST /user.
type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

// HandleRegister handles POST /user.
//
// Registration is idempotent by email: the first call creates an active
// donor, repeat calls return {"message":"user already exists"} with 200 and
// write nothing.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}
	if body.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Email is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Users.Register(ctx, models.User{
		Name:       body.Name,
		Email:      body.Email,
		Avatar:     body.Avatar,
		BloodGroup: body.BloodGroup,
		District:   body.District,
		Upazila:    body.Upazila,
	})
	if err == userstore.ErrExists {
		writeJSON(w, http.StatusOK, map[string]any{"message": "user already exists"})
		return
	}
	if err != nil {
		h.serverError(w, "register", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"insertedId": created.ID.Hex()})
}
