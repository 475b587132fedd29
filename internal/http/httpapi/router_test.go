package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/http/handlers"
	"stagecraft/api/internal/imageurl"
	"stagecraft/api/internal/middleware"
)

// Routing-level tests: who can reach what, and where the guard sends the
// rest. Handler behavior itself is covered in the handlers package.

type routerAdminRepo struct {
	admin *domain.Admin
}

func (r *routerAdminRepo) Count(context.Context) (int64, error) {
	if r.admin == nil {
		return 0, nil
	}
	return 1, nil
}

func (r *routerAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	r.admin = admin
	return admin, nil
}

func (r *routerAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if r.admin == nil || r.admin.Email != email {
		return nil, domain.ErrNotFound
	}
	return r.admin, nil
}

type routerProjectRepo struct {
	mu       sync.Mutex
	projects map[string]domain.Project
}

func (r *routerProjectRepo) List(context.Context, domain.ProjectFilter) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

func (r *routerProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *routerProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return project, nil
}

func (r *routerProjectRepo) Update(_ context.Context, id string, project *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return nil, domain.ErrNotFound
	}
	updated := *project
	updated.ID = id
	r.projects[id] = updated
	return &updated, nil
}

func (r *routerProjectRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *routerProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.projects[id]
	return ok, nil
}

func (r *routerProjectRepo) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Views++
	r.projects[id] = p
	return nil
}

func (r *routerProjectRepo) TopByViews(context.Context, int) ([]domain.Project, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) (http.Handler, *handlers.App) {
	t.Helper()
	sessions := &middleware.Sessions{Secret: "router-test", TTL: time.Hour}
	app := &handlers.App{
		Logger:     zerolog.Nop(),
		Sessions:   sessions,
		Admins:     &routerAdminRepo{},
		Projects:   &routerProjectRepo{projects: map[string]domain.Project{}},
		Images:     imageurl.Normalizer{},
		BcryptCost: 4,
	}
	return NewRouter(app, sessions, zerolog.Nop(), nil), app
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"secret1"}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d; body %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return env.Data.Token
}

func seedRouterAdmin(t *testing.T, app *handlers.App) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := app.Admins.Create(context.Background(), &domain.Admin{
		ID:           domain.NewID(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func TestRouterHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterMutationsRequireSession(t *testing.T) {
	router, app := newTestRouter(t)
	repo := app.Projects.(*routerProjectRepo)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/api/projects"},
		{"PUT", "/api/projects/507f1f77bcf86cd799439011"},
		{"DELETE", "/api/projects/507f1f77bcf86cd799439011"},
		{"POST", "/api/clients"},
		{"PUT", "/api/clients/507f1f77bcf86cd799439011"},
		{"DELETE", "/api/clients/507f1f77bcf86cd799439011"},
		{"GET", "/api/analytics"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"mainTitle":"x"}`)))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
	if len(repo.projects) != 0 {
		t.Fatalf("unauthenticated request mutated state")
	}
}

func TestRouterAuthenticatedProjectLifecycle(t *testing.T) {
	router, app := newTestRouter(t)
	seedRouterAdmin(t, app)
	token := login(t, router)

	// Create with the bearer token.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"mainTitle":"Gala"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d; body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	// Public read needs no session.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/projects/"+created.Data.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("public get status = %d", rec.Code)
	}

	// Delete with the session cookie instead of the header.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/api/projects/"+created.Data.ID, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d; body %s", rec.Code, rec.Body.String())
	}
}

func TestRouterAdminPagesGuarded(t *testing.T) {
	router, app := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/projects", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("Location = %q, want /admin/login", loc)
	}

	// Login and setup pages render without a session.
	for _, path := range []string{"/admin/login", "/admin/setup"} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, rec.Code)
		}
	}

	// A valid session cookie reaches the page handlers.
	seedRouterAdmin(t, app)
	token := login(t, router)
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated page status = %d, want 200", rec.Code)
	}
}
