package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type principalDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string       `json:"token"`
	Admin principalDTO `json:"admin"`
}

// AuthLogin exchanges credentials for a session token. Unknown email and
// wrong password produce the same error so the endpoint leaks no account
// existence information.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := a.Admins.GetByEmail(r.Context(), domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		a.Logger.Error().Err(err).Msg("login: admin lookup failed")
		a.error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		a.error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	principal := middleware.Principal{ID: admin.ID, Email: admin.Email, Name: admin.Name}
	token, err := a.Sessions.Issue(principal)
	if err != nil {
		a.Logger.Error().Err(err).Msg("login: sign session token failed")
		a.error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, a.sessionCookie(token, int(a.Sessions.TTL.Seconds())))
	a.ok(w, http.StatusOK, loginResponse{
		Token: token,
		Admin: principalDTO{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	})
}

// AuthLogout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session store to revoke.
func (a *App) AuthLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, a.sessionCookie("", -1))
	a.message(w, http.StatusOK, "Logged out successfully", nil)
}

// AuthSession echoes the principal for a valid session token, 401 otherwise.
func (a *App) AuthSession(w http.ResponseWriter, r *http.Request) {
	token := middleware.RequestToken(r)
	if token == "" {
		a.error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	principal, err := a.Sessions.Verify(token)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	a.ok(w, http.StatusOK, principalDTO{ID: principal.ID, Email: principal.Email, Name: principal.Name})
}

func (a *App) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
