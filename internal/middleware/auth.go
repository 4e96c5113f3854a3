package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskbot/taskbot-api/internal/constants"
	apierrors "github.com/taskbot/taskbot-api/internal/errors"
)

const bearerPrefix = "Bearer "

// TokenVerifier resolves a bearer token to the owning user's ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth authenticates the request from the Authorization header and
// stores the verified user ID in the context. Handlers behind it never run
// for unauthenticated requests.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			apierrors.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		userID, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
