package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beka-birhanu/maze-forge-api/service/i"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"

	// ContextUserID is the key used to store the authenticated user's ID.
	ContextUserID = "userID"
)

// Authoriz builds the bearer-token authorization middleware for
// protected routes. Valid claims are attached to the request context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		if userID, ok := claims["userID"].(string); ok {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}
