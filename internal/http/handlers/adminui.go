package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// adminTemplates holds the parsed admin pages. The "img" func runs stored
// image references through the URL normalizer so Drive share links render.
func (a *App) adminTemplates() *template.Template {
	return template.Must(template.New("admin").Funcs(template.FuncMap{
		"img": a.Images.Normalize,
	}).ParseFS(templateFS, "templates/*.html"))
}

type adminPage struct {
	Title     string
	Principal *middleware.Principal
	Data      any
}

func (a *App) renderAdmin(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	page := adminPage{
		Title:     title,
		Principal: middleware.PrincipalFromContext(r.Context()),
		Data:      data,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.adminTemplates().ExecuteTemplate(w, name, page); err != nil {
		a.Logger.Error().Err(err).Str("template", name).Msg("adminui: render failed")
	}
}

// AdminLoginPage renders the login form. Always reachable, guard-exempt.
func (a *App) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	a.renderAdmin(w, r, "login.html", "Login", nil)
}

// AdminSetupPage renders the one-time setup form; guard-exempt so the first
// admin can be created before any session exists.
func (a *App) AdminSetupPage(w http.ResponseWriter, r *http.Request) {
	a.renderAdmin(w, r, "setup.html", "Setup", nil)
}

// AdminDashboardPage is the landing page behind the guard.
func (a *App) AdminDashboardPage(w http.ResponseWriter, r *http.Request) {
	dto, err := a.buildDashboard(r.Context(), time.Now())
	if err != nil {
		a.Logger.Error().Err(err).Msg("adminui: dashboard data failed")
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	a.renderAdmin(w, r, "dashboard.html", "Dashboard", dto)
}

// AdminProjectsPage lists all projects for editing.
func (a *App) AdminProjectsPage(w http.ResponseWriter, r *http.Request) {
	projects, err := a.Projects.List(r.Context(), domain.ProjectFilter{})
	if err != nil {
		a.Logger.Error().Err(err).Msg("adminui: project list failed")
		http.Error(w, "failed to load projects", http.StatusInternalServerError)
		return
	}
	a.renderAdmin(w, r, "projects.html", "Projects", projects)
}

// AdminClientsPage lists all clients for editing.
func (a *App) AdminClientsPage(w http.ResponseWriter, r *http.Request) {
	clients, err := a.Clients.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("adminui: client list failed")
		http.Error(w, "failed to load clients", http.StatusInternalServerError)
		return
	}
	a.renderAdmin(w, r, "clients.html", "Clients", clients)
}

// AdminAnalyticsPage shows the same aggregate the JSON endpoint serves.
func (a *App) AdminAnalyticsPage(w http.ResponseWriter, r *http.Request) {
	dto, err := a.buildDashboard(r.Context(), time.Now())
	if err != nil {
		a.Logger.Error().Err(err).Msg("adminui: analytics data failed")
		http.Error(w, "failed to load analytics", http.StatusInternalServerError)
		return
	}
	a.renderAdmin(w, r, "analytics.html", "Analytics", dto)
}
