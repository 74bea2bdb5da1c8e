package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
)

const productColumns = `id, asin, name, description, original_price, discounted_price,
	category, material, country_of_origin, artisan_id, images,
	dim_length, dim_width, dim_height, dim_unit, weight_value, weight_unit,
	in_stock, featured, created_at`

type ProductParams struct {
	ASIN            string
	Name            string
	Description     string
	OriginalPrice   decimal.Decimal
	DiscountedPrice *decimal.Decimal
	Category        string
	Material        string
	CountryOfOrigin string
	ArtisanID       *string
	Images          []string
	Dimensions      *models.Dimensions
	Weight          *models.Weight
	InStock         bool
	Featured        bool
}

// UpdateProductParams carries a partial update. Nil fields keep the stored value.
type UpdateProductParams struct {
	Name            *string
	Description     *string
	OriginalPrice   *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	Category        *string
	Material        *string
	CountryOfOrigin *string
	ArtisanID       *string
	Images          []string
	Dimensions      *models.Dimensions
	Weight          *models.Weight
	InStock         *bool
	Featured        *bool
}

// ProductFilter is a conjunction: every supplied field must match. Country,
// material and category match by case-insensitive equality; search matches as
// a case-insensitive substring across name, description, category, material
// and country of origin.
type ProductFilter struct {
	Search    string
	Country   string
	Material  string
	Category  string
	ArtisanID string
	Featured  *bool
}

type productRow interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row productRow) (*models.Product, error) {
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

func CreateProduct(ctx context.Context, db *sql.DB, params ProductParams) (*models.Product, error) {
	var dimLength, dimWidth, dimHeight, weightVal interface{}
	var dimUnit, weightUnit interface{}
	if params.Dimensions != nil {
		dimLength = params.Dimensions.Length
		dimWidth = params.Dimensions.Width
		dimHeight = params.Dimensions.Height
		dimUnit = params.Dimensions.Unit
	}
	if params.Weight != nil {
		weightVal = params.Weight.Value
		weightUnit = params.Weight.Unit
	}

	var discounted interface{}
	if params.DiscountedPrice != nil {
		discounted = *params.DiscountedPrice
	}

	images := params.Images
	if images == nil {
		images = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO products (id, asin, name, description, original_price, discounted_price,
			category, material, country_of_origin, artisan_id, images,
			dim_length, dim_width, dim_height, dim_unit, weight_value, weight_unit,
			in_stock, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
		RETURNING %s`, productColumns)

	row := db.QueryRowContext(ctx, query,
		uuid.New().String(),
		params.ASIN,
		params.Name,
		params.Description,
		params.OriginalPrice,
		discounted,
		params.Category,
		params.Material,
		params.CountryOfOrigin,
		params.ArtisanID,
		pq.Array(images),
		dimLength,
		dimWidth,
		dimHeight,
		dimUnit,
		weightVal,
		weightUnit,
		params.InStock,
		params.Featured,
	)

	product, err := scanProduct(row)
	if err != nil {
		if database.IsUniqueViolation(err, "products_asin_key") {
			return nil, fmt.Errorf("create product: duplicate asin %q", params.ASIN)
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, db *sql.DB, id string) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func ListProducts(ctx context.Context, db *sql.DB, filter ProductFilter) ([]models.Product, error) {
	where := []string{}
	args := []interface{}{}
	arg := func(value interface{}) int {
		args = append(args, value)
		return len(args)
	}

	if filter.Country != "" {
		where = append(where, fmt.Sprintf("LOWER(country_of_origin) = LOWER($%d)", arg(filter.Country)))
	}
	if filter.Material != "" {
		where = append(where, fmt.Sprintf("LOWER(material) = LOWER($%d)", arg(filter.Material)))
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("LOWER(category) = LOWER($%d)", arg(filter.Category)))
	}
	if filter.ArtisanID != "" {
		where = append(where, fmt.Sprintf("artisan_id = $%d", arg(filter.ArtisanID)))
	}
	if filter.Featured != nil {
		where = append(where, fmt.Sprintf("featured = $%d", arg(*filter.Featured)))
	}
	if filter.Search != "" {
		n := arg("%" + filter.Search + "%")
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d OR material ILIKE $%d OR country_of_origin ILIKE $%d)",
			n, n, n, n, n))
	}

	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

func UpdateProduct(ctx context.Context, db *sql.DB, id string, params UpdateProductParams) (*models.Product, error) {
	set := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.OriginalPrice != nil {
		add("original_price", *params.OriginalPrice)
	}
	if params.DiscountedPrice != nil {
		add("discounted_price", *params.DiscountedPrice)
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Material != nil {
		add("material", *params.Material)
	}
	if params.CountryOfOrigin != nil {
		add("country_of_origin", *params.CountryOfOrigin)
	}
	if params.ArtisanID != nil {
		add("artisan_id", *params.ArtisanID)
	}
	if params.Images != nil {
		add("images", pq.Array(params.Images))
	}
	if params.Dimensions != nil {
		add("dim_length", params.Dimensions.Length)
		add("dim_width", params.Dimensions.Width)
		add("dim_height", params.Dimensions.Height)
		add("dim_unit", params.Dimensions.Unit)
	}
	if params.Weight != nil {
		add("weight_value", params.Weight.Value)
		add("weight_unit", params.Weight.Unit)
	}
	if params.InStock != nil {
		add("in_stock", *params.InStock)
	}
	if params.Featured != nil {
		add("featured", *params.Featured)
	}

	if len(set) == 0 {
		return GetProduct(ctx, db, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING %s`, strings.Join(set, ", "), len(args), productColumns)

	product, err := scanProduct(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return database.ErrProductNotFound
	}

	return nil
}

// Facet returns the distinct values of a catalog column, used by the config
// endpoints that feed the storefront filter dropdowns.
func Facet(ctx context.Context, db *sql.DB, column string) ([]string, error) {
	var query string
	switch column {
	case "category":
		query = `SELECT DISTINCT category FROM products ORDER BY category`
	case "material":
		query = `SELECT DISTINCT material FROM products ORDER BY material`
	case "country_of_origin":
		query = `SELECT DISTINCT country_of_origin FROM products ORDER BY country_of_origin`
	default:
		return nil, fmt.Errorf("unknown facet column %q", column)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("facet %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan facet value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return values, nil
}
