package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/auth"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/internal/store"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	SessionID string       `json:"sessionId"`
	User      *models.User `json:"user"`
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	user, err := store.CreateUser(c.Request.Context(), s.db, req.Email, hash, req.FirstName, req.LastName, false)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := s.sessions.Create(sessionFor(user))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{SessionID: token, User: user})
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	user, err := store.GetUserByEmail(c.Request.Context(), s.db, req.Email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		s.respondError(c, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := s.sessions.Create(sessionFor(user))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{SessionID: token, User: user})
}

func (s *Server) Logout(c *gin.Context) {
	s.sessions.Delete(currentToken(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the caller's profile, re-read from the database so changes made
// after login are visible.
func (s *Server) Me(c *gin.Context) {
	session := currentSession(c)

	user, err := store.GetUser(c.Request.Context(), s.db, session.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func sessionFor(user *models.User) auth.Session {
	return auth.Session{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	}
}
