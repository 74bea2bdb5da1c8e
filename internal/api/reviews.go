package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (s *Server) ListReviews(c *gin.Context) {
	// 404 for a product that does not exist, not an empty list.
	if _, err := store.GetProduct(c.Request.Context(), s.db, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	reviews, err := store.ListReviews(c.Request.Context(), s.db, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (s *Server) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	session := currentSession(c)

	review, err := store.CreateReview(c.Request.Context(), s.db, c.Param("id"), session.UserID, req.Rating, req.Comment)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
