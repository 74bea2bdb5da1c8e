package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/internal/store"
)

type productRequest struct {
	ASIN            string             `json:"asin" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	OriginalPrice   decimal.Decimal    `json:"originalPrice" binding:"required"`
	DiscountedPrice *decimal.Decimal   `json:"discountedPrice"`
	Category        string             `json:"category" binding:"required"`
	Material        string             `json:"material" binding:"required"`
	CountryOfOrigin string             `json:"countryOfOrigin" binding:"required"`
	ArtisanID       *string            `json:"artisanId"`
	Images          []string           `json:"images"`
	Dimensions      *models.Dimensions `json:"dimensions"`
	Weight          *models.Weight     `json:"weight"`
	InStock         *bool              `json:"inStock"`
	Featured        bool               `json:"featured"`
}

type updateProductRequest struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	OriginalPrice   *decimal.Decimal   `json:"originalPrice"`
	DiscountedPrice *decimal.Decimal   `json:"discountedPrice"`
	Category        *string            `json:"category"`
	Material        *string            `json:"material"`
	CountryOfOrigin *string            `json:"countryOfOrigin"`
	ArtisanID       *string            `json:"artisanId"`
	Images          []string           `json:"images"`
	Dimensions      *models.Dimensions `json:"dimensions"`
	Weight          *models.Weight     `json:"weight"`
	InStock         *bool              `json:"inStock"`
	Featured        *bool              `json:"featured"`
}

func (s *Server) ListProducts(c *gin.Context) {
	filter := store.ProductFilter{
		Search:    c.Query("search"),
		Country:   c.Query("country"),
		Material:  c.Query("material"),
		Category:  c.Query("category"),
		ArtisanID: c.Query("artisan"),
	}
	if featured := c.Query("featured"); featured != "" {
		val := featured == "true"
		filter.Featured = &val
	}

	products, err := store.ListProducts(c.Request.Context(), s.db, filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) GetProduct(c *gin.Context) {
	product, err := store.GetProduct(c.Request.Context(), s.db, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := store.CreateProduct(c.Request.Context(), s.db, store.ProductParams{
		ASIN:            req.ASIN,
		Name:            req.Name,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		Material:        req.Material,
		CountryOfOrigin: req.CountryOfOrigin,
		ArtisanID:       req.ArtisanID,
		Images:          req.Images,
		Dimensions:      req.Dimensions,
		Weight:          req.Weight,
		InStock:         inStock,
		Featured:        req.Featured,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBindError(c, err)
		return
	}

	product, err := store.UpdateProduct(c.Request.Context(), s.db, c.Param("id"), store.UpdateProductParams{
		Name:            req.Name,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		Material:        req.Material,
		CountryOfOrigin: req.CountryOfOrigin,
		ArtisanID:       req.ArtisanID,
		Images:          req.Images,
		Dimensions:      req.Dimensions,
		Weight:          req.Weight,
		InStock:         req.InStock,
		Featured:        req.Featured,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := store.DeleteProduct(c.Request.Context(), s.db, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
