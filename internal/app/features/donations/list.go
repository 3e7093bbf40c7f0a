package donations

import (
	"context"
	"net/http"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/paging"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeMine handles GET /donation-request.
//
// Lists the caller's own requests by requester email with optional status
// filter and offset pagination. The returned total counts every match to
// the filter regardless of the page, so callers can compute page counts.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	email := query.Get(r, "email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Email is required"})
		return
	}

	page, limit := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requests, total, err := h.Donations.ListByRequester(ctx, email, query.Get(r, "status"),
		paging.Skip(page, limit), int64(limit))
	if err != nil {
		h.serverError(w, "owner listing", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"requests": requests,
		"total":    total,
	})
}

// ServePending handles GET /donation-requests/pending.
//
// Returns all pending requests, newest first.
func (h *Handler) ServePending(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requests, err := h.Donations.ListPending(ctx)
	if err != nil {
		h.serverError(w, "pending listing", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"requests": requests,
	})
}

// ServeAll handles GET /donation-requests. Admin view; returns every
// request as a bare array.
func (h *Handler) ServeAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	requests, err := h.Donations.ListAll(ctx)
	if err != nil {
		h.serverError(w, "full listing", err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}
