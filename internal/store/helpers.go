package store

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/models"
)

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

// scanCartRow scans a cart row followed by its joined product columns.
func scanCartRow(row productRow, item *models.CartItem) (*models.Product, error) {
	product := &models.Product{}

	var (
		discounted decimal.NullDecimal
		artisanID  sql.NullString
		dimLength  decimal.NullDecimal
		dimWidth   decimal.NullDecimal
		dimHeight  decimal.NullDecimal
		dimUnit    sql.NullString
		weightVal  decimal.NullDecimal
		weightUnit sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&product.ID,
		&product.ASIN,
		&product.Name,
		&product.Description,
		&product.OriginalPrice,
		&discounted,
		&product.Category,
		&product.Material,
		&product.CountryOfOrigin,
		&artisanID,
		pq.Array(&product.Images),
		&dimLength,
		&dimWidth,
		&dimHeight,
		&dimUnit,
		&weightVal,
		&weightUnit,
		&product.InStock,
		&product.Featured,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if discounted.Valid {
		product.DiscountedPrice = &discounted.Decimal
	}
	if artisanID.Valid {
		product.ArtisanID = &artisanID.String
	}
	if dimUnit.Valid {
		product.Dimensions = &models.Dimensions{
			Length: dimLength.Decimal,
			Width:  dimWidth.Decimal,
			Height: dimHeight.Decimal,
			Unit:   dimUnit.String,
		}
	}
	if weightUnit.Valid {
		product.Weight = &models.Weight{
			Value: weightVal.Decimal,
			Unit:  weightUnit.String,
		}
	}

	return product, nil
}
