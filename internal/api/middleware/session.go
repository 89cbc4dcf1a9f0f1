package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// Session guards a route group: the request must carry a session token that
// resolves to a live session and an existing user. Anything else is
// redirected to /unauthenticated, which answers with the notAuthenticated
// code.
func Session(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFrom(r)
			if token == "" {
				http.Redirect(w, r, "/unauthenticated", http.StatusFound)
				return
			}

			user, err := authService.Resolve(r.Context(), token)
			if err != nil {
				if !errors.Is(err, service.ErrNoSession) {
					log.Printf("ERROR [middleware.Session] failed to resolve session: %v", err)
				}
				http.Redirect(w, r, "/unauthenticated", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFrom extracts the session token from the Authorization header or,
// failing that, the session cookie.
func TokenFrom(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// GetUser returns the authenticated user attached by Session.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
