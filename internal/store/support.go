package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
)

type SupportMessageParams struct {
	Name    string
	Email   string
	Phone   *string
	Subject string
	Message string
}

func CreateSupportMessage(ctx context.Context, db *sql.DB, params SupportMessageParams) (*models.SupportMessage, error) {
	msg := &models.SupportMessage{}
	var phone sql.NullString

	query := `
		INSERT INTO support_messages (id, name, email, phone, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, name, email, phone, subject, message, status, created_at`

	err := db.QueryRowContext(ctx, query,
		uuid.New().String(),
		params.Name,
		params.Email,
		params.Phone,
		params.Subject,
		params.Message,
		models.SupportStatusOpen,
	).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&phone,
		&msg.Subject,
		&msg.Message,
		&msg.Status,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create support message: %w", err)
	}

	if phone.Valid {
		msg.Phone = &phone.String
	}
	return msg, nil
}

// ListSupportMessages returns all messages, optionally filtered by status.
func ListSupportMessages(ctx context.Context, db *sql.DB, status models.SupportStatus) ([]models.SupportMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM support_messages`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list support messages: %w", err)
	}
	defer rows.Close()

	messages := []models.SupportMessage{}
	for rows.Next() {
		var msg models.SupportMessage
		var phone sql.NullString
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&phone,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan support message: %w", err)
		}
		if phone.Valid {
			msg.Phone = &phone.String
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return messages, nil
}

func UpdateSupportStatus(ctx context.Context, db *sql.DB, id string, status models.SupportStatus) (*models.SupportMessage, error) {
	msg := &models.SupportMessage{}
	var phone sql.NullString

	query := `
		UPDATE support_messages
		SET status = $1
		WHERE id = $2
		RETURNING id, name, email, phone, subject, message, status, created_at`

	err := db.QueryRowContext(ctx, query, status, id).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&phone,
		&msg.Subject,
		&msg.Message,
		&msg.Status,
		&msg.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrMessageNotFound
		}
		return nil, fmt.Errorf("update support status: %w", err)
	}

	if phone.Valid {
		msg.Phone = &phone.String
	}
	return msg, nil
}
