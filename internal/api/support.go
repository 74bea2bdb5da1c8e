package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type supportRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
}

// CreateSupportMessage is the public contact form; no account needed.
func (s *Server) CreateSupportMessage(c *gin.Context) {
	var req supportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	msg, err := store.CreateSupportMessage(c.Request.Context(), s.db, store.SupportMessageParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	if s.mailer.Enabled() {
		go s.mailer.SendSupportAck(msg.Email, msg.Name, msg.Subject)
	}

	c.JSON(http.StatusCreated, msg)
}
