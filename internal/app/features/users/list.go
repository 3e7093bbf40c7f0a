package users

import (
	"context"
	"net/http"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
)

// ServeList handles GET /users.
//
// Every query parameter becomes an equality term in the filter, e.g.
// /users?role=admin&status=active. No parameters returns all users, in
// store-native order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := bson.M{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	users, err := h.Users.List(ctx, filter)
	if err != nil {
		h.serverError(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ServeDonors handles GET /users/donors.
//
// Returns active donors, narrowed by the optional bloodGroup, district and
// upazila parameters.
func (h *Handler) ServeDonors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donors, err := h.Users.SearchDonors(ctx,
		query.Get(r, "bloodGroup"),
		query.Get(r, "district"),
		query.Get(r, "upazila"),
	)
	if err != nil {
		h.serverError(w, "donor search", err)
		return
	}
	writeJSON(w, http.StatusOK, donors)
}
