package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"stagecraft/api/internal/domain"
)

type setupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AdminSetup creates the first admin account. It refuses to run once any
// admin exists; further accounts go through the createadmin CLI.
func (a *App) AdminSetup(w http.ResponseWriter, r *http.Request) {
	count, err := a.Admins.Count(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("setup: admin count failed")
		a.error(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}
	if count > 0 {
		a.error(w, http.StatusForbidden, "Admin already exists. This route is disabled.")
		return
	}

	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		a.error(w, http.StatusBadRequest, "Email, password, and name are required")
		return
	}
	if len(req.Password) < 6 {
		a.error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.BcryptCost)
	if err != nil {
		a.Logger.Error().Err(err).Msg("setup: hash password failed")
		a.error(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	admin, err := a.Admins.Create(r.Context(), &domain.Admin{
		ID:           domain.NewID(),
		Email:        domain.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         req.Name,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("setup: create admin failed")
		a.error(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	a.message(w, http.StatusCreated, "Admin created successfully", map[string]string{
		"email": admin.Email,
		"name":  admin.Name,
	})
}
