package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/token"
)

const identityKey = "identity"

// ErrNoSuchUser is what a RoleSource returns when the user row is gone.
var ErrNoSuchUser = errors.New("no such user")

// RoleSource reads the caller's current role from the store. Admin
// checks never trust the role baked into the token: a role change or a
// deleted account must take effect within the token's lifetime.
type RoleSource interface {
	GetRole(ctx context.Context, userID int64) (string, error)
}

// RequireAuth validates the Bearer token and stows the decoded identity
// in the request context. No token → 401, bad or expired token → 403.
func RequireAuth(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		raw := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			raw = strings.TrimSpace(parts[1])
		}

		claims, err := tm.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireAdmin re-queries the store for the caller's current role.
// Must run after RequireAuth.
func RequireAdmin(roles RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		role, err := roles.GetRole(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNoSuchUser) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			log.Error().Err(err).Int64("user_id", claims.UserID).Msg("role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// Identity returns the claims attached by RequireAuth, or nil.
func Identity(c *gin.Context) *token.Claims {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
