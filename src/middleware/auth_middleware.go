package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"fintrack-server/src/apperr"
	"fintrack-server/src/auth"
)

// BearerToken extracts the token from the Authorization header, or an empty
// string when the header is absent.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// JWTAuthMiddleware gates every protected route: no token is 401, a token
// that fails signature or expiry checks is 403, and a valid token puts the
// authenticated user id on the request context. It never touches storage —
// the embedded identity is trusted for the token's lifetime.
func JWTAuthMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := BearerToken(r)
			if tokenString == "" {
				http.Error(w, apperr.ErrTokenMissing.Error(), http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				if errors.Is(err, apperr.ErrTokenExpired) {
					log.Printf("INFO: Rejected expired token on %s %s", r.Method, r.URL.Path)
				} else {
					log.Printf("INFO: Rejected invalid token on %s %s", r.Method, r.URL.Path)
				}
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
