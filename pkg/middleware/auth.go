package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/quitute/quitute/pkg/auth"
	"github.com/quitute/quitute/pkg/response"
)

// claimsKey is the unexported context key for validated JWT claims.
type claimsKey struct{}

// Auth validates the bearer token and injects the claims into the request
// context. The optional roles restrict who may pass (empty = any valid token).
func Auth(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				response.Unauthorized(w)
				return
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				response.Forbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromCtx returns the validated claims injected by Auth, or nil for
// unauthenticated requests (e.g. guest order creation).
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

// OptionalAuth injects claims when a valid bearer token is present but lets
// anonymous requests through. Used by order creation, which accepts guests.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token != "" {
			if claims, err := auth.ValidateToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func hasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
