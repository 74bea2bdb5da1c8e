package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
)

// AddCartItem upserts by (user, product): adding a product already in the cart
// accumulates its quantity onto the existing row instead of creating another.
func AddCartItem(ctx context.Context, db *sql.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	item := &models.CartItem{}

	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, user_id, product_id, quantity, created_at`

	err := db.QueryRowContext(ctx, query, uuid.New().String(), userID, productID, quantity).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return item, nil
}

// ListCartItems returns the user's cart with each product embedded.
func ListCartItems(ctx context.Context, db *sql.DB, userID string) ([]models.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.created_at, %s
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at`, prefixColumns("p", productColumns))

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		product, err := scanCartRow(rows, &item)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item.Product = product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

func UpdateCartItem(ctx context.Context, db *sql.DB, userID, itemID string, quantity int) (*models.CartItem, error) {
	item := &models.CartItem{}

	query := `
		UPDATE cart_items
		SET quantity = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, product_id, quantity, created_at`

	err := db.QueryRowContext(ctx, query, quantity, itemID, userID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}

	return item, nil
}

func DeleteCartItem(ctx context.Context, db *sql.DB, userID, itemID string) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return database.ErrCartItemNotFound
	}

	return nil
}

func ClearCart(ctx context.Context, db *sql.DB, userID string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
