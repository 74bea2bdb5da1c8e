package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/currency"
	"github.com/tanvi/artisan-market/internal/store"
)

// The config endpoints feed the storefront's filter dropdowns and currency
// selector. Facets come from the live catalog rather than a hardcoded list.

func (s *Server) ConfigCountries(c *gin.Context) {
	s.facet(c, "country_of_origin")
}

func (s *Server) ConfigMaterials(c *gin.Context) {
	s.facet(c, "material")
}

func (s *Server) ConfigCategories(c *gin.Context) {
	s.facet(c, "category")
}

func (s *Server) facet(c *gin.Context, column string) {
	values, err := store.Facet(c.Request.Context(), s.db, column)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (s *Server) ConfigCurrencyRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"base":  currency.Base,
		"rates": currency.Rates(),
	})
}
