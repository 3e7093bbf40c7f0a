package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/roles"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeRole handles GET /users/{email}/role.
//
// Unknown emails answer 404 but still carry {"role":"donor"} in the body.
// Frontend callers depend on one or the other signal, so both are kept
// exactly as the service has always answered.
func (h *Handler) ServeRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	role, err := h.Users.RoleByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		writeJSON(w, http.StatusNotFound, map[string]any{"role": roles.Donor})
		return
	}
	if err != nil {
		h.serverError(w, "role lookup", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"role": role})
}

// updateRoleRequest is the JSON body for PATCH /admin/users/role/{id}.
type updateRoleRequest struct {
	Role string `json:"role"`
}

// HandleUpdateRole handles PATCH /admin/users/role/{id}.
//
// The new role must be one of the known roles; any known role may replace
// any other.
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid user id"})
		return
	}

	var body updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}
	if !roles.IsValid(body.Role) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid role"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.UpdateRole(ctx, id, body.Role); err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "User not found"})
			return
		}
		h.serverError(w, "role update", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Role updated to " + body.Role,
	})
}
