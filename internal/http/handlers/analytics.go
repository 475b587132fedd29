package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/middleware"
)

type trackPageViewRequest struct {
	Page     string `json:"page"`
	Referrer string `json:"referrer"`
}

type trackProjectViewRequest struct {
	ProjectID string `json:"projectId"`
}

// TrackPageView appends a page_view event. Callers treat this as
// fire-and-forget; a failure must never block the visitor.
func (a *App) TrackPageView(w http.ResponseWriter, r *http.Request) {
	var req trackPageViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Page == "" {
		a.error(w, http.StatusBadRequest, "Page is required")
		return
	}

	referrer := r.Header.Get("Referer")
	if referrer == "" {
		referrer = req.Referrer
	}
	ip := middleware.ClientIP(r)
	event := &domain.AnalyticsEvent{
		ID:        domain.NewID(),
		Type:      domain.EventPageView,
		Page:      req.Page,
		IP:        ip,
		UserAgent: userAgent(r),
		Referrer:  referrer,
		Country:   a.resolveCountry(ip),
	}
	if err := a.Analytics.Append(r.Context(), event); err != nil {
		a.Logger.Error().Err(err).Msg("analytics: append page view failed")
		a.error(w, http.StatusInternalServerError, "Failed to track page view")
		return
	}
	a.ok(w, http.StatusOK, nil)
}

// TrackProjectView appends a project_view event and bumps the project's view
// counter. The event log is the source of truth; a failed counter increment
// after a recorded event is logged and the request still succeeds.
func (a *App) TrackProjectView(w http.ResponseWriter, r *http.Request) {
	var req trackProjectViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProjectID == "" {
		a.error(w, http.StatusBadRequest, "Project ID is required")
		return
	}
	if !domain.ValidID(req.ProjectID) {
		a.error(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	exists, err := a.Projects.Exists(r.Context(), req.ProjectID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("analytics: project existence check failed")
		a.error(w, http.StatusInternalServerError, "Failed to track project view")
		return
	}
	if !exists {
		a.error(w, http.StatusNotFound, "Project not found")
		return
	}

	ip := middleware.ClientIP(r)
	event := &domain.AnalyticsEvent{
		ID:        domain.NewID(),
		Type:      domain.EventProjectView,
		Page:      "/projects/" + req.ProjectID,
		ProjectID: req.ProjectID,
		IP:        ip,
		UserAgent: userAgent(r),
		Referrer:  r.Header.Get("Referer"),
		Country:   a.resolveCountry(ip),
	}
	if err := a.Analytics.Append(r.Context(), event); err != nil {
		a.Logger.Error().Err(err).Msg("analytics: append project view failed")
		a.error(w, http.StatusInternalServerError, "Failed to track project view")
		return
	}
	if err := a.Projects.IncrementViews(r.Context(), req.ProjectID); err != nil {
		// The event is already recorded; the counter is a derived cache.
		a.Logger.Warn().Err(err).Str("project_id", req.ProjectID).Msg("analytics: view counter increment failed")
	}
	a.ok(w, http.StatusOK, nil)
}

type topProjectDTO struct {
	ID        string   `json:"id"`
	MainTitle string   `json:"mainTitle"`
	Views     int64    `json:"views"`
	Images    []string `json:"images"`
}

type dailyViewDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type dashboardDTO struct {
	TotalPageViews      int64           `json:"totalPageViews"`
	ViewsToday          int64           `json:"viewsToday"`
	ViewsLast7Days      int64           `json:"viewsLast7Days"`
	ViewsLast30Days     int64           `json:"viewsLast30Days"`
	TotalProjectViews   int64           `json:"totalProjectViews"`
	TopProjects         []topProjectDTO `json:"topProjects"`
	DailyViews          []dailyViewDTO  `json:"dailyViews"`
	UniqueVisitorsCount int64           `json:"uniqueVisitorsCount"`
}

// dashboardWindows derives the aggregation window bounds from the request
// time: "today" starts at the local calendar day, the 7/30 day windows roll
// back in exact 24h steps.
func dashboardWindows(now time.Time) (todayStart, last7, last30 time.Time) {
	todayStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last7 = now.Add(-7 * 24 * time.Hour)
	last30 = now.Add(-30 * 24 * time.Hour)
	return todayStart, last7, last30
}

// AnalyticsDashboard computes the aggregate figures for the admin dashboard.
// Requires a session. Pure read, no side effects.
func (a *App) AnalyticsDashboard(w http.ResponseWriter, r *http.Request) {
	dto, err := a.buildDashboard(r.Context(), time.Now())
	if err != nil {
		a.Logger.Error().Err(err).Msg("analytics: dashboard aggregation failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	a.ok(w, http.StatusOK, dto)
}

func (a *App) buildDashboard(ctx context.Context, now time.Time) (*dashboardDTO, error) {
	todayStart, last7, last30 := dashboardWindows(now)

	var dto dashboardDTO
	var err error
	if dto.TotalPageViews, err = a.Analytics.CountByType(ctx, domain.EventPageView, nil); err != nil {
		return nil, err
	}
	if dto.ViewsToday, err = a.Analytics.CountByType(ctx, domain.EventPageView, &todayStart); err != nil {
		return nil, err
	}
	if dto.ViewsLast7Days, err = a.Analytics.CountByType(ctx, domain.EventPageView, &last7); err != nil {
		return nil, err
	}
	if dto.ViewsLast30Days, err = a.Analytics.CountByType(ctx, domain.EventPageView, &last30); err != nil {
		return nil, err
	}
	if dto.TotalProjectViews, err = a.Analytics.CountByType(ctx, domain.EventProjectView, nil); err != nil {
		return nil, err
	}

	top, err := a.Projects.TopByViews(ctx, 5)
	if err != nil {
		return nil, err
	}
	dto.TopProjects = make([]topProjectDTO, 0, len(top))
	for i := range top {
		images := top[i].Images
		if images == nil {
			images = []string{}
		}
		dto.TopProjects = append(dto.TopProjects, topProjectDTO{
			ID:        top[i].ID,
			MainTitle: top[i].MainTitle,
			Views:     top[i].Views,
			Images:    images,
		})
	}

	daily, err := a.Analytics.DailyPageViews(ctx, last30)
	if err != nil {
		return nil, err
	}
	dto.DailyViews = make([]dailyViewDTO, 0, len(daily))
	for _, b := range daily {
		dto.DailyViews = append(dto.DailyViews, dailyViewDTO{Date: b.Date, Count: b.Count})
	}

	if dto.UniqueVisitorsCount, err = a.Analytics.DistinctIPCount(ctx, last30); err != nil {
		return nil, err
	}
	return &dto, nil
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get("User-Agent"); ua != "" {
		return ua
	}
	return "unknown"
}
