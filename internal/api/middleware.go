package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/auth"
)

const (
	sessionContextKey = "session"
	tokenContextKey   = "sessionToken"
)

// RequireAuth resolves the bearer token to a session and deposits it in the
// request context as a typed value. Unauthenticated requests get a 401.
func (s *Server) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	session, ok := s.sessions.Get(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	c.Set(sessionContextKey, session)
	c.Set(tokenContextKey, token)
	c.Next()
}

// RequireAdmin must run after RequireAuth.
func (s *Server) RequireAdmin(c *gin.Context) {
	session := currentSession(c)
	if !session.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		return
	}
	c.Next()
}

func currentSession(c *gin.Context) auth.Session {
	session, _ := c.MustGet(sessionContextKey).(auth.Session)
	return session
}

func currentToken(c *gin.Context) string {
	token, _ := c.MustGet(tokenContextKey).(string)
	return token
}
