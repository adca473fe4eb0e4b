package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/christine-ng23/bookstore-backend/pkg/token"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token and stores its user id and role
// in the request context.
func Authenticate(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, errMessage := claimsFromRequest(r, jwtSecret)
			if claims == nil {
				logger.Warn("Rejected unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("reason", errMessage))
				utils.ResponseErrorMessage(w, http.StatusUnauthorized, errMessage)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthenticate attaches user info when a valid bearer token is
// present and lets the request through anonymously otherwise. Registration
// uses this: anyone may register, but only an authenticated admin may assign
// elevated roles.
func OptionalAuthenticate(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := claimsFromRequest(r, jwtSecret)
			if claims == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects requests whose token role is not admin. Must run after
// Authenticate.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseErrorMessage(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if role != "admin" {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseErrorMessage(w, http.StatusForbidden, "Forbidden: insufficient permission")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromRequest(r *http.Request, jwtSecret string) (*token.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, "Authorization header missing or invalid"
	}

	claims, err := token.Verify(jwtSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, "Token expired"
		}
		return nil, "Invalid token"
	}

	return claims, ""
}
