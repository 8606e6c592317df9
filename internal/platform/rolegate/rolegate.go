// Package rolegate provides the Gin middleware that gates routes by
// subscription role.
//
// The gate reads the cached profile role and is a UX convenience only: the
// external backend's row-level policy is the real authorization boundary.
package rolegate

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	profileentity "marketlens/internal/feature/profile/domain/entity"
	jwtmw "marketlens/internal/platform/jwt"
)

// RoleSource resolves the subscription role of a user. Defined here on the
// consumer side; the profile store is the production implementation.
type RoleSource interface {
	Role(ctx context.Context, userID uint) (string, error)
}

// tier maps normalized roles onto an ordered access level.
func tier(role string) int {
	switch profileentity.NormalizeRole(role) {
	case profileentity.RoleAdmin:
		return 2
	case profileentity.RolePremium, profileentity.RoleEnterprise:
		return 1
	default:
		return 0
	}
}

func require(source RoleSource, minTier int, denied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := jwtmw.UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		role, err := source.Role(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve role"})
			return
		}
		if tier(role) < minTier {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": denied})
			return
		}
		c.Next()
	}
}

// RequirePremium admits PREMIUM, ENTERPRISE and ADMIN users.
func RequirePremium(source RoleSource) gin.HandlerFunc {
	return require(source, 1, "premium plan required")
}

// RequireAdmin admits ADMIN users only.
func RequireAdmin(source RoleSource) gin.HandlerFunc {
	return require(source, 2, "admin access required")
}
