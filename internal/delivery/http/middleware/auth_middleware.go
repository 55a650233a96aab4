package middleware

import (
	"context"
	"net/http"
	"strings"

	"practice-site/internal/domain/repository"
	"practice-site/pkg/jwt"
	"practice-site/pkg/response"
)

type contextKey string

const (
	UsernameKey contextKey = "admin_username"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   repository.SessionRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Logged-out tokens are removed from the session store
		if m.sessions != nil {
			exists, err := m.sessions.Exists(r.Context(), claims.Username, claims.TokenID)
			if err != nil {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if !exists {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		ctx := WithAdmin(r.Context(), claims.Username, claims.TokenID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithAdmin stores the authenticated admin in the context.
func WithAdmin(ctx context.Context, username, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UsernameKey, username)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}

// GetUsernameFromContext extracts the admin username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
