package rbac

import (
	"net/http"

	"microblog-platform/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only users with the admin flag set.
// Chain it after auth.RequireUser; there is no role hierarchy beyond
// the single flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.CurrentIdentity(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		if !id.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only superuser can perform this action"})
			return
		}
		c.Next()
	}
}

// RequireAuthenticated rejects requests without a resolved identity.
// After auth.RequireUser this can only fail if the chain is miswired,
// but it is part of the observable contract for protected writes.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := auth.CurrentIdentity(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only authorized users can perform this action"})
			return
		}
		c.Next()
	}
}
