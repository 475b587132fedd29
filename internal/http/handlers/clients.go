package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"stagecraft/api/internal/domain"
)

type clientDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toClientDTO(c *domain.Client) clientDTO {
	return clientDTO{
		ID:          c.ID,
		Name:        c.Name,
		Logo:        c.Logo,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Order:       c.Order,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type createClientRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// updateClientRequest carries a partial update; absent fields stay untouched.
type updateClientRequest struct {
	Name        *string `json:"name"`
	Logo        *string `json:"logo"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

// ClientsList returns every client ordered ascending by sort order. Public.
func (a *App) ClientsList(w http.ResponseWriter, r *http.Request) {
	clients, err := a.Clients.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("clients: list failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch clients")
		return
	}
	dtos := make([]clientDTO, 0, len(clients))
	for i := range clients {
		dtos = append(dtos, toClientDTO(&clients[i]))
	}
	a.ok(w, http.StatusOK, dtos)
}

// ClientsGet returns one client by id. Public.
func (a *App) ClientsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid client ID")
		return
	}
	client, err := a.Clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Client not found")
			return
		}
		a.Logger.Error().Err(err).Msg("clients: get failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch client")
		return
	}
	a.ok(w, http.StatusOK, toClientDTO(client))
}

// ClientsCreate adds a client. Requires a session.
func (a *App) ClientsCreate(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Logo == "" || req.Subtitle == "" || req.Description == "" {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	client, err := a.Clients.Create(r.Context(), &domain.Client{
		ID:          domain.NewID(),
		Name:        req.Name,
		Logo:        req.Logo,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("clients: create failed")
		a.error(w, http.StatusInternalServerError, "Failed to create client")
		return
	}
	a.ok(w, http.StatusCreated, toClientDTO(client))
}

// ClientsUpdate applies a partial update. Requires a session.
func (a *App) ClientsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid client ID")
		return
	}
	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := a.Clients.Update(r.Context(), id, domain.ClientPatch{
		Name:        req.Name,
		Logo:        req.Logo,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Client not found")
			return
		}
		a.Logger.Error().Err(err).Msg("clients: update failed")
		a.error(w, http.StatusInternalServerError, "Failed to update client")
		return
	}
	a.ok(w, http.StatusOK, toClientDTO(client))
}

// ClientsDelete removes a client. Requires a session. Deleting an absent id
// is a 404, not a silent success.
func (a *App) ClientsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid client ID")
		return
	}
	if err := a.Clients.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Client not found")
			return
		}
		a.Logger.Error().Err(err).Msg("clients: delete failed")
		a.error(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	a.message(w, http.StatusOK, "Client deleted successfully", nil)
}
