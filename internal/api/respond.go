package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tanvi/artisan-market/internal/database"
	"go.uber.org/zap"
)

// respondError maps store-layer sentinel errors onto HTTP statuses. Anything
// unclassified is logged and surfaced as a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound),
		errors.Is(err, database.ErrArtisanNotFound),
		errors.Is(err, database.ErrProductNotFound),
		errors.Is(err, database.ErrOrderNotFound),
		errors.Is(err, database.ErrCartItemNotFound),
		errors.Is(err, database.ErrAddressNotFound),
		errors.Is(err, database.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})

	case errors.Is(err, database.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})

	case errors.Is(err, database.ErrAlreadyReviewed),
		errors.Is(err, database.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})

	case errors.Is(err, database.ErrNotCancellable):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, database.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})

	default:
		s.logger.Error("internal error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// respondBindError surfaces the first validation failure as a 400, matching
// the storefront's one-message-at-a-time error banner.
func (s *Server) respondBindError(c *gin.Context, err error) {
	message := "Invalid request body"

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		switch first.Tag() {
		case "required":
			message = first.Field() + " is required"
		case "email":
			message = first.Field() + " must be a valid email address"
		case "min":
			message = first.Field() + " is below the minimum of " + first.Param()
		case "max":
			message = first.Field() + " is above the maximum of " + first.Param()
		default:
			message = first.Field() + " is invalid"
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
