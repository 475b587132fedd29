package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"stagecraft/api/internal/domain"
)

type projectDTO struct {
	ID         string               `json:"id"`
	MainTitle  string               `json:"mainTitle"`
	Client     string               `json:"client"`
	Location   string               `json:"location"`
	Date       string               `json:"date"`
	Category   string               `json:"category"`
	Featured   bool                 `json:"featured"`
	Overview   string               `json:"overview"`
	Stats      []domain.ProjectStat `json:"stats"`
	Services   []string             `json:"services"`
	Images     []string             `json:"images"`
	ClientLogo string               `json:"clientLogo"`
	Views      int64                `json:"views"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

func toProjectDTO(p *domain.Project) projectDTO {
	dto := projectDTO{
		ID:         p.ID,
		MainTitle:  p.MainTitle,
		Client:     p.Client,
		Location:   p.Location,
		Date:       p.Date,
		Category:   p.Category,
		Featured:   p.Featured,
		Overview:   p.Overview,
		Stats:      p.Stats,
		Services:   p.Services,
		Images:     p.Images,
		ClientLogo: p.ClientLogo,
		Views:      p.Views,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if dto.Stats == nil {
		dto.Stats = []domain.ProjectStat{}
	}
	if dto.Services == nil {
		dto.Services = []string{}
	}
	if dto.Images == nil {
		dto.Images = []string{}
	}
	return dto
}

type projectPayload struct {
	MainTitle  string               `json:"mainTitle"`
	Client     string               `json:"client"`
	Location   string               `json:"location"`
	Date       string               `json:"date"`
	Category   string               `json:"category"`
	Featured   bool                 `json:"featured"`
	Overview   string               `json:"overview"`
	Stats      []domain.ProjectStat `json:"stats"`
	Services   []string             `json:"services"`
	Images     []string             `json:"images"`
	ClientLogo string               `json:"clientLogo"`
}

func (p projectPayload) toDomain() *domain.Project {
	return &domain.Project{
		MainTitle:  p.MainTitle,
		Client:     p.Client,
		Location:   p.Location,
		Date:       p.Date,
		Category:   p.Category,
		Featured:   p.Featured,
		Overview:   p.Overview,
		Stats:      p.Stats,
		Services:   p.Services,
		Images:     p.Images,
		ClientLogo: p.ClientLogo,
	}
}

// ProjectsList returns projects newest first, optionally filtered by
// featured/category and capped with limit. Public.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProjectFilter{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	projects, err := a.Projects.List(r.Context(), filter)
	if err != nil {
		a.Logger.Error().Err(err).Msg("projects: list failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	dtos := make([]projectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, toProjectDTO(&projects[i]))
	}
	a.ok(w, http.StatusOK, dtos)
}

// ProjectsGet returns one project by id. Public.
func (a *App) ProjectsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	project, err := a.Projects.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Project not found")
			return
		}
		a.Logger.Error().Err(err).Msg("projects: get failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	a.ok(w, http.StatusOK, toProjectDTO(project))
}

// ProjectsCreate adds a project. Requires a session. Featured, stats,
// services and images default to false/empty when absent.
func (a *App) ProjectsCreate(w http.ResponseWriter, r *http.Request) {
	var req projectPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MainTitle == "" {
		a.error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	project := req.toDomain()
	project.ID = domain.NewID()
	created, err := a.Projects.Create(r.Context(), project)
	if err != nil {
		a.Logger.Error().Err(err).Msg("projects: create failed")
		a.error(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	a.ok(w, http.StatusCreated, toProjectDTO(created))
}

// ProjectsUpdate overwrites the full mutable field set on PUT; unlike client
// updates this is not a partial merge.
func (a *App) ProjectsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	var req projectPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := a.Projects.Update(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Project not found")
			return
		}
		a.Logger.Error().Err(err).Msg("projects: update failed")
		a.error(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	a.ok(w, http.StatusOK, toProjectDTO(updated))
}

// ProjectsDelete removes a project. Requires a session. Deleting an absent id
// is a 404, not a silent success.
func (a *App) ProjectsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !domain.ValidID(id) {
		a.error(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	if err := a.Projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Project not found")
			return
		}
		a.Logger.Error().Err(err).Msg("projects: delete failed")
		a.error(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	a.message(w, http.StatusOK, "Project deleted successfully", nil)
}
