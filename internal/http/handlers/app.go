package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/imageurl"
	"stagecraft/api/internal/infra/geoip"
	"stagecraft/api/internal/middleware"
)

// App bundles the dependencies the HTTP handlers need. It holds no request
// state; every request runs independently against the repositories.
type App struct {
	Logger    zerolog.Logger
	Sessions  *middleware.Sessions
	Admins    domain.AdminRepository
	Clients   domain.ClientRepository
	Projects  domain.ProjectRepository
	Analytics domain.AnalyticsRepository
	Images    imageurl.Normalizer
	GeoIP     geoip.CountryResolver // optional; nil disables country enrichment

	BcryptCost    int
	SecureCookies bool
}

// envelope is the uniform JSON response shape for every /api route.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) ok(w http.ResponseWriter, code int, data any) {
	a.json(w, code, envelope{Success: true, Data: data})
}

func (a *App) message(w http.ResponseWriter, code int, msg string, data any) {
	a.json(w, code, envelope{Success: true, Message: msg, Data: data})
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, envelope{Success: false, Error: msg})
}

func (a *App) resolveCountry(ip string) string {
	if a.GeoIP == nil {
		return ""
	}
	country, err := a.GeoIP.CountryCode(ip)
	if err != nil {
		return ""
	}
	return country
}
