package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (s *Server) GetCart(c *gin.Context) {
	session := currentSession(c)

	items, err := store.ListCartItems(c.Request.Context(), s.db, session.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session := currentSession(c)

	item, err := store.AddCartItem(c.Request.Context(), s.db, session.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	session := currentSession(c)

	item, err := store.UpdateCartItem(c.Request.Context(), s.db, session.UserID, c.Param("id"), req.Quantity)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	session := currentSession(c)

	if err := store.DeleteCartItem(c.Request.Context(), s.db, session.UserID, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
