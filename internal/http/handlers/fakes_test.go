package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/imageurl"
	"stagecraft/api/internal/middleware"
)

// In-memory repository fakes. They honor the same contracts as the PG
// implementations: ErrNotFound on absent ids, sorted listings, atomic view
// increments.

func testApp() *App {
	return &App{
		Logger:     zerolog.Nop(),
		Sessions:   &middleware.Sessions{Secret: "test-secret", TTL: time.Hour},
		Admins:     newFakeAdminRepo(),
		Clients:    newFakeClientRepo(),
		Projects:   newFakeProjectRepo(),
		Analytics:  newFakeAnalyticsRepo(),
		Images:     imageurl.Normalizer{},
		BcryptCost: 12,
	}
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]domain.Admin // keyed by email
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]domain.Admin{}}
}

func (f *fakeAdminRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.admins)), nil
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *admin
	created.CreatedAt = time.Now()
	f.admins[created.Email] = created
	return &created, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &admin, nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	seq     int
	clients map[string]domain.Client
	calls   int // repository round-trips, to assert fail-fast validation
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]domain.Client{}}
}

func (f *fakeClientRepo) List(context.Context) ([]domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.seq++
	created := *client
	created.CreatedAt = time.Unix(int64(f.seq), 0)
	created.UpdatedAt = created.CreatedAt
	f.clients[created.ID] = created
	return &created, nil
}

func (f *fakeClientRepo) Update(_ context.Context, id string, patch domain.ClientPatch) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Logo != nil {
		c.Logo = *patch.Logo
	}
	if patch.Subtitle != nil {
		c.Subtitle = *patch.Subtitle
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Order != nil {
		c.Order = *patch.Order
	}
	c.UpdatedAt = c.UpdatedAt.Add(time.Second)
	f.clients[id] = c
	return &c, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := f.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	seq      int
	projects map[string]domain.Project
	calls    int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]domain.Project{}}
}

func (f *fakeProjectRepo) List(_ context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.seq++
	created := *project
	created.CreatedAt = time.Unix(int64(f.seq), 0)
	created.UpdatedAt = created.CreatedAt
	f.projects[created.ID] = created
	return &created, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, id string, project *domain.Project) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	old, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := *project
	updated.ID = id
	updated.Views = old.Views
	updated.CreatedAt = old.CreatedAt
	updated.UpdatedAt = old.UpdatedAt.Add(time.Second)
	f.projects[id] = updated
	return &updated, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	_, ok := f.projects[id]
	return ok, nil
}

func (f *fakeProjectRepo) IncrementViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Views++
	f.projects[id] = p
	return nil
}

func (f *fakeProjectRepo) TopByViews(_ context.Context, limit int) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	events []domain.AnalyticsEvent
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{}
}

func (f *fakeAnalyticsRepo) Append(_ context.Context, event *domain.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *event
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.events = append(f.events, stored)
	return nil
}

func (f *fakeAnalyticsRepo) CountByType(_ context.Context, eventType domain.EventType, since *time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, e := range f.events {
		if e.Type != eventType {
			continue
		}
		if since != nil && e.CreatedAt.Before(*since) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeAnalyticsRepo) DailyPageViews(_ context.Context, since time.Time) ([]domain.DailyCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byDate := map[string]int64{}
	for _, e := range f.events {
		if e.Type != domain.EventPageView || e.CreatedAt.Before(since) {
			continue
		}
		byDate[e.CreatedAt.UTC().Format("2006-01-02")]++
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	out := make([]domain.DailyCount, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.DailyCount{Date: d, Count: byDate[d]})
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) DistinctIPCount(_ context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ips := map[string]struct{}{}
	for _, e := range f.events {
		if e.Type != domain.EventPageView || e.CreatedAt.Before(since) {
			continue
		}
		ips[e.IP] = struct{}{}
	}
	return int64(len(ips)), nil
}

var (
	_ domain.AdminRepository     = (*fakeAdminRepo)(nil)
	_ domain.ClientRepository    = (*fakeClientRepo)(nil)
	_ domain.ProjectRepository   = (*fakeProjectRepo)(nil)
	_ domain.AnalyticsRepository = (*fakeAnalyticsRepo)(nil)
)

func jsonRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// requestWithID injects a chi route parameter so handlers can be invoked
// without a router.
func requestWithID(method, target, id, body string) *http.Request {
	r := jsonRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return env
}
