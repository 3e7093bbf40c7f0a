package donations

import "github.com/go-chi/chi/v5"

// Routes registers the donation-request endpoints on the given router.
func Routes(r chi.Router, h *Handler) {
	r.Post("/donation-request", h.HandleCreate)
	r.Get("/donation-request", h.ServeMine)
	r.Delete("/donation-request/{id}", h.HandleDelete)
	r.Patch("/donation-request/status/{id}", h.HandleStatus)
	r.Patch("/donation-request/confirm/{id}", h.HandleConfirm)
	r.Get("/donation-requests/pending", h.ServePending)
	r.Get("/donation-requests", h.ServeAll)
}
