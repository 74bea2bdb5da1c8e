package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type addressRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	StreetAddress string  `json:"streetAddress" binding:"required"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	ZipCode       string  `json:"zipCode" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	Phone         *string `json:"phone"`
	IsDefault     bool    `json:"isDefault"`
}

type updateAddressRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	IsDefault     *bool   `json:"isDefault"`
}

func (s *Server) ListAddresses(c *gin.Context) {
	session := currentSession(c)

	addresses, err := store.ListAddresses(c.Request.Context(), s.db, session.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

func (s *Server) CreateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	session := currentSession(c)

	address, err := store.CreateAddress(c.Request.Context(), s.db, session.UserID, store.AddressParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Phone:         req.Phone,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

func (s *Server) UpdateAddress(c *gin.Context) {
	var req updateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	session := currentSession(c)

	address, err := store.UpdateAddress(c.Request.Context(), s.db, session.UserID, c.Param("id"), store.UpdateAddressParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Phone:         req.Phone,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

func (s *Server) DeleteAddress(c *gin.Context) {
	session := currentSession(c)

	if err := store.DeleteAddress(c.Request.Context(), s.db, session.UserID, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
