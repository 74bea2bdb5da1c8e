package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/store"
)

type shippingAddressRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	StreetAddress string  `json:"streetAddress" binding:"required"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	ZipCode       string  `json:"zipCode" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	Phone         *string `json:"phone"`
}

type createOrderRequest struct {
	PaymentMethod   string                  `json:"paymentMethod" binding:"required"`
	Currency        string                  `json:"currency"`
	AddressID       string                  `json:"addressId"`
	ShippingAddress *shippingAddressRequest `json:"shippingAddress"`
}

func (s *Server) ListOrders(c *gin.Context) {
	session := currentSession(c)

	orders, err := store.ListOrdersByUser(c.Request.Context(), s.db, session.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder checks the cart out. The shipping address is snapshotted either
// from a saved address (addressId) or from an inline shippingAddress block.
func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	session := currentSession(c)
	ctx := c.Request.Context()

	var shipping *store.AddressParams
	switch {
	case req.ShippingAddress != nil:
		a := req.ShippingAddress
		shipping = &store.AddressParams{
			FirstName:     a.FirstName,
			LastName:      a.LastName,
			StreetAddress: a.StreetAddress,
			City:          a.City,
			State:         a.State,
			ZipCode:       a.ZipCode,
			Country:       a.Country,
			Phone:         a.Phone,
		}
	case req.AddressID != "":
		saved, err := store.GetAddress(ctx, s.db, session.UserID, req.AddressID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		shipping = &store.AddressParams{
			FirstName:     saved.FirstName,
			LastName:      saved.LastName,
			StreetAddress: saved.StreetAddress,
			City:          saved.City,
			State:         saved.State,
			ZipCode:       saved.ZipCode,
			Country:       saved.Country,
			Phone:         saved.Phone,
		}
	}

	order, err := store.CreateOrder(ctx, s.db, session.UserID, store.CreateOrderParams{
		PaymentMethod: req.PaymentMethod,
		Currency:      req.Currency,
		Shipping:      shipping,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	if s.mailer.Enabled() {
		go s.mailer.SendOrderConfirmation(session.Email, order)
	}

	c.JSON(http.StatusCreated, order)
}

func (s *Server) GetOrder(c *gin.Context) {
	session := currentSession(c)

	order, err := store.GetOrderForUser(c.Request.Context(), s.db, session.UserID, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) CancelOrder(c *gin.Context) {
	session := currentSession(c)

	order, err := store.CancelOrder(c.Request.Context(), s.db, session.UserID, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
