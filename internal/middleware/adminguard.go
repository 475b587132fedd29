package middleware

import "net/http"

// AdminGuard protects the server-rendered admin pages. Unauthenticated
// requests are redirected to the login page instead of getting a 401; the
// login and setup pages themselves are always allowed. API routes have their
// own session check and do not go through this guard.
func AdminGuard(sessions *Sessions, loginPath string, exempt ...string) func(http.Handler) http.Handler {
	allowed := map[string]struct{}{loginPath: {}}
	for _, p := range exempt {
		allowed[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			principal, err := sessions.Verify(cookie.Value)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(contextWithPrincipal(r.Context(), principal)))
		})
	}
}
