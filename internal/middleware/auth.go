package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expensify/internal/identity"
)

// PrincipalIDKey is the context key under which the authenticated principal
// id is stored.
const PrincipalIDKey = "principalID"

// Auth returns a Gin middleware that resolves the bearer credential to a
// principal via the identity provider adapter and stores the principal id in
// the request context. Requests without a valid credential get 401.
func Auth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Authorization header is required"}})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid authorization header format"}})
			return
		}

		principal, err := verifier.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"}})
			return
		}

		c.Set(PrincipalIDKey, principal.ID)
		c.Next()
	}
}
