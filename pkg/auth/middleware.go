package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rewardplus/loyalty/pkg/utils"
)

type ContextKey string

const StaffIDKey ContextKey = "staffID"

// AuthMiddleware guards the staff API: it expects a Bearer token issued by
// the auth service and stores the staff id in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), StaffIDKey, claims.StaffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
