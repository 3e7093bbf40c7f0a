package users

import "github.com/go-chi/chi/v5"

// Routes registers the user endpoints on the given router. The paths are
// flat rather than grouped under one prefix, so this feature attaches to
// the root router instead of mounting a subrouter.
func Routes(r chi.Router, h *Handler) {
	r.Get("/users", h.ServeList)
	r.Get("/users/donors", h.ServeDonors)
	r.Get("/users/{email}/role", h.ServeRole)
	r.Post("/user", h.HandleRegister)
	r.Patch("/user/{email}", h.HandleUpdateProfile)
	r.Patch("/admin/users/role/{id}", h.HandleUpdateRole)
}
