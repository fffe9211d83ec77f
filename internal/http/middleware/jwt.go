package middleware

import (
	"net/http"
	"strings"

	"corvaxlab/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionCookie is set by the login callback and read back here.
const SessionCookie = "session"

// JWT authenticates a request from the session cookie or an Authorization
// bearer header and stores the user id in the gin context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
