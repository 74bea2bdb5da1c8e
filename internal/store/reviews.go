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

func CreateReview(ctx context.Context, db *sql.DB, productID, userID string, rating int, comment string) (*models.Review, error) {
	review := &models.Review{}

	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, product_id, user_id, rating, comment, created_at`

	err := db.QueryRowContext(ctx, query, uuid.New().String(), productID, userID, rating, comment).Scan(
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "reviews_product_id_user_id_key") {
			return nil, database.ErrAlreadyReviewed
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

// ListReviews returns a product's reviews newest first, with the reviewer's
// display name joined in.
func ListReviews(ctx context.Context, db *sql.DB, productID string) ([]models.Review, error) {
	query := `
		SELECT r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at,
		       u.first_name || ' ' || u.last_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC`

	rows, err := db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reviews, nil
}
