package http

import (
	"context"
	"net/http"
	"strings"

	"litflix/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDFromBearer(r, secret)
			if !ok {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches the user id when a valid bearer token
// is present and lets anonymous requests through untouched. Used by the
// recommendations endpoint, which must tolerate anonymous access.
func OptionalAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := userIDFromBearer(r, secret); ok {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userIDFromBearer(r *http.Request, secret string) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := auth.ParseToken(secret, token)
	if err != nil {
		return "", false
	}
	return claims.Sub, true
}

// UserIDFrom returns the authenticated user id, or "" for anonymous
// requests.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
