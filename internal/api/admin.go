package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/internal/store"
)

type updateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	TrackingNumber *string `json:"trackingNumber"`
}

type updateSupportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) AdminListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	page, err := store.ListOrdersCursor(c.Request.Context(), s.db, c.Query("cursor"), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) AdminUpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status"})
		return
	}

	order, err := store.UpdateOrderStatus(c.Request.Context(), s.db, c.Param("id"), status, req.TrackingNumber)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) AdminListSupport(c *gin.Context) {
	status := models.SupportStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown support status"})
		return
	}

	messages, err := store.ListSupportMessages(c.Request.Context(), s.db, status)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (s *Server) AdminUpdateSupportStatus(c *gin.Context) {
	var req updateSupportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	status := models.SupportStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown support status"})
		return
	}

	msg, err := store.UpdateSupportStatus(c.Request.Context(), s.db, c.Param("id"), status)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}
