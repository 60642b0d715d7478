package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/api/auth"
)

// UserEmailKey is the gin context key holding the authenticated caller's
// email.
const UserEmailKey = "user_email"

// RequireAuth verifies the bearer token and stores the caller's email in the
// context. Missing or invalid tokens abort with 401.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		email, err := jwtManager.Parse(token)
		if err != nil {
			abortUnauthorized(c, auth.ErrInvalidToken)
			return
		}

		c.Set(UserEmailKey, email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// CallerEmail returns the authenticated email set by RequireAuth.
func CallerEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
