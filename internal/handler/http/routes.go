package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the HTTP route tree.
//
// Three zones: public auth endpoints, authenticated user endpoints, and the
// admin zone which additionally requires the IsAdmin flag on the caller's
// account.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/deposits", func(r chi.Router) {
			r.Get("/", h.listDeposits)
			r.Post("/", h.createDeposit)
			r.Get("/summary", h.depositSummary)
			r.Get("/{depositID}", h.getDeposit)
			r.Put("/{depositID}", h.updateDeposit)
			r.Delete("/{depositID}", h.deleteDeposit)
		})

		r.Route("/api/banks", func(r chi.Router) {
			r.Get("/", h.listBanks)
			r.Post("/", h.addUserBank)
			r.Put("/{name}", h.addUserBank)
			r.Delete("/{name}", h.deleteUserBank)
		})

		r.Route("/api/settings", func(r chi.Router) {
			r.Get("/", h.getSettings)
			r.Put("/{key}", h.setUserSetting)
		})
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Route("/api/admin/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Put("/{userID}/password", h.updateUserPassword)
			r.Delete("/{userID}", h.deleteUser)
		})

		r.Route("/api/admin/banks", func(r chi.Router) {
			r.Get("/", h.listGlobalBanks)
			r.Post("/", h.addGlobalBank)
			r.Put("/{name}", h.updateGlobalBank)
			r.Delete("/{name}", h.deleteGlobalBank)
		})

		r.Put("/api/admin/settings/{key}", h.setGlobalSetting)
	})

	return router
}
