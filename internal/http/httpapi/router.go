package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"stagecraft/api/internal/http/handlers"
	"stagecraft/api/internal/middleware"
)

// NewRouter wires every route. Admin pages sit behind the redirect guard;
// mutating API routes carry their own session check.
func NewRouter(app *handlers.App, sessions *middleware.Sessions, logger zerolog.Logger, corsOrigins []string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.Recoverer, middleware.Logger(logger), middleware.CORS(corsOrigins))

	r.Get("/api/healthz", app.Health)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", app.ProjectsList)
		r.Get("/{id}", app.ProjectsGet)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))
			r.Post("/", app.ProjectsCreate)
			r.Put("/{id}", app.ProjectsUpdate)
			r.Delete("/{id}", app.ProjectsDelete)
		})
	})

	r.Route("/api/clients", func(r chi.Router) {
		r.Get("/", app.ClientsList)
		r.Get("/{id}", app.ClientsGet)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))
			r.Post("/", app.ClientsCreate)
			r.Put("/{id}", app.ClientsUpdate)
			r.Delete("/{id}", app.ClientsDelete)
		})
	})

	r.Route("/api/analytics", func(r chi.Router) {
		r.Post("/track", app.TrackPageView)
		r.Post("/project-view", app.TrackProjectView)
		r.With(middleware.RequireSession(sessions)).Get("/", app.AnalyticsDashboard)
	})

	r.Post("/api/admin/setup", app.AdminSetup)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", app.AuthLogin)
		r.Post("/logout", app.AuthLogout)
		r.Get("/session", app.AuthSession)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminGuard(sessions, "/admin/login", "/admin/setup"))
		r.Get("/", app.AdminDashboardPage)
		r.Get("/login", app.AdminLoginPage)
		r.Get("/setup", app.AdminSetupPage)
		r.Get("/projects", app.AdminProjectsPage)
		r.Get("/clients", app.AdminClientsPage)
		r.Get("/analytics", app.AdminAnalyticsPage)
	})

	return r
}
