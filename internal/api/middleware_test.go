package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvi/artisan-market/internal/auth"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *auth.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionStore()
	return NewServer(nil, sessions, nil, zap.NewNop()), sessions
}

func authRouter(s *Server) *gin.Engine {
	router := gin.New()
	router.GET("/private", s.RequireAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": currentSession(c).UserID})
	})
	router.GET("/admin", s.RequireAuth, s.RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	s, _ := newTestServer(t)
	router := authRouter(s)

	for _, header := range []string{"", "Bearer ", "Basic abc", "sometoken"} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	s, _ := newTestServer(t)
	router := authRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsValidSession(t *testing.T) {
	s, sessions := newTestServer(t)
	router := authRouter(s)

	token, err := sessions.Create(auth.Session{UserID: "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdmin(t *testing.T) {
	s, sessions := newTestServer(t)
	router := authRouter(s)

	customer, err := sessions.Create(auth.Session{UserID: "u1"})
	require.NoError(t, err)
	admin, err := sessions.Create(auth.Session{UserID: "u2", IsAdmin: true})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+customer)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s, sessions := newTestServer(t)
	router := gin.New()
	router.POST("/logout", s.RequireAuth, s.Logout)
	router.GET("/private", s.RequireAuth, func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := sessions.Create(auth.Session{UserID: "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
