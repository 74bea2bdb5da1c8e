package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type artisanRequest struct {
	Name           string  `json:"name" binding:"required"`
	Bio            string  `json:"bio"`
	Location       string  `json:"location"`
	Specialization string  `json:"specialization"`
	Experience     string  `json:"experience"`
	Story          string  `json:"story"`
	Image          *string `json:"image"`
}

type updateArtisanRequest struct {
	Name           *string `json:"name"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	Specialization *string `json:"specialization"`
	Experience     *string `json:"experience"`
	Story          *string `json:"story"`
	Image          *string `json:"image"`
}

func (s *Server) ListArtisans(c *gin.Context) {
	artisans, err := store.ListArtisans(c.Request.Context(), s.db)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, artisans)
}

func (s *Server) GetArtisan(c *gin.Context) {
	artisan, err := store.GetArtisan(c.Request.Context(), s.db, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, artisan)
}

func (s *Server) CreateArtisan(c *gin.Context) {
	var req artisanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	artisan, err := store.CreateArtisan(c.Request.Context(), s.db, store.ArtisanParams{
		Name:           req.Name,
		Bio:            req.Bio,
		Location:       req.Location,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Story:          req.Story,
		Image:          req.Image,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artisan)
}

func (s *Server) UpdateArtisan(c *gin.Context) {
	var req updateArtisanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	artisan, err := store.UpdateArtisan(c.Request.Context(), s.db, c.Param("id"), store.UpdateArtisanParams{
		Name:           req.Name,
		Bio:            req.Bio,
		Location:       req.Location,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Story:          req.Story,
		Image:          req.Image,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, artisan)
}

func (s *Server) DeleteArtisan(c *gin.Context) {
	if err := store.DeleteArtisan(c.Request.Context(), s.db, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artisan deleted"})
}
