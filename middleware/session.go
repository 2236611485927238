package middleware

import (
	"errors"
	"net/http"
	"strings"

	"luxelane/services"

	"github.com/gin-gonic/gin"
)

const SessionContextKey = "session"

// SessionMiddleware resolves the bearer session token into the live
// in-memory session and injects it into the gin context.
func SessionMiddleware(tokens *services.TokenService, sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		sessionID, err := tokens.ParseSessionToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		session, err := sessions.Get(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession pulls the session injected by SessionMiddleware.
func GetSession(c *gin.Context) (*services.AppSession, error) {
	if val, ok := c.Get(SessionContextKey); ok {
		if session, ok := val.(*services.AppSession); ok {
			return session, nil
		}
	}
	return nil, errors.New("session not found in context")
}
