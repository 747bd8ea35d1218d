package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/service"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// Auth validates the `token` request header and stores the resolved user
// in the request context. Every rejection uses the same 403 reason so a
// caller cannot probe which tokens exist.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.Authenticate(r.Context(), r.Header.Get("token"))
			if err != nil {
				if !errors.Is(err, service.ErrInvalidToken) {
					log.Printf("ERROR [middleware.Auth] token lookup failed: %v", err)
					writeError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				writeError(w, http.StatusForbidden, service.ErrInvalidToken.Error())
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}
