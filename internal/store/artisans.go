package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
)

type ArtisanParams struct {
	Name           string
	Bio            string
	Location       string
	Specialization string
	Experience     string
	Story          string
	Image          *string
}

// UpdateArtisanParams carries a partial update. Nil fields keep the stored value.
type UpdateArtisanParams struct {
	Name           *string
	Bio            *string
	Location       *string
	Specialization *string
	Experience     *string
	Story          *string
	Image          *string
}

func CreateArtisan(ctx context.Context, db *sql.DB, params ArtisanParams) (*models.Artisan, error) {
	artisan := &models.Artisan{}

	query := `
		INSERT INTO artisans (id, name, bio, location, specialization, experience, story, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, name, bio, location, specialization, experience, story, image, created_at`

	err := db.QueryRowContext(ctx, query,
		uuid.New().String(),
		params.Name,
		params.Bio,
		params.Location,
		params.Specialization,
		params.Experience,
		params.Story,
		params.Image,
	).Scan(
		&artisan.ID,
		&artisan.Name,
		&artisan.Bio,
		&artisan.Location,
		&artisan.Specialization,
		&artisan.Experience,
		&artisan.Story,
		&artisan.Image,
		&artisan.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create artisan: %w", err)
	}

	return artisan, nil
}

func GetArtisan(ctx context.Context, db *sql.DB, id string) (*models.Artisan, error) {
	artisan := &models.Artisan{}

	query := `
		SELECT id, name, bio, location, specialization, experience, story, image, created_at
		FROM artisans
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&artisan.ID,
		&artisan.Name,
		&artisan.Bio,
		&artisan.Location,
		&artisan.Specialization,
		&artisan.Experience,
		&artisan.Story,
		&artisan.Image,
		&artisan.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrArtisanNotFound
		}
		return nil, fmt.Errorf("get artisan: %w", err)
	}

	return artisan, nil
}

func ListArtisans(ctx context.Context, db *sql.DB) ([]models.Artisan, error) {
	query := `
		SELECT id, name, bio, location, specialization, experience, story, image, created_at
		FROM artisans
		ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artisans: %w", err)
	}
	defer rows.Close()

	artisans := []models.Artisan{}
	for rows.Next() {
		var artisan models.Artisan
		err := rows.Scan(
			&artisan.ID,
			&artisan.Name,
			&artisan.Bio,
			&artisan.Location,
			&artisan.Specialization,
			&artisan.Experience,
			&artisan.Story,
			&artisan.Image,
			&artisan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan artisan: %w", err)
		}
		artisans = append(artisans, artisan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return artisans, nil
}

func UpdateArtisan(ctx context.Context, db *sql.DB, id string, params UpdateArtisanParams) (*models.Artisan, error) {
	set := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Bio != nil {
		add("bio", *params.Bio)
	}
	if params.Location != nil {
		add("location", *params.Location)
	}
	if params.Specialization != nil {
		add("specialization", *params.Specialization)
	}
	if params.Experience != nil {
		add("experience", *params.Experience)
	}
	if params.Story != nil {
		add("story", *params.Story)
	}
	if params.Image != nil {
		add("image", *params.Image)
	}

	if len(set) == 0 {
		return GetArtisan(ctx, db, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE artisans
		SET %s
		WHERE id = $%d
		RETURNING id, name, bio, location, specialization, experience, story, image, created_at`,
		strings.Join(set, ", "), len(args))

	artisan := &models.Artisan{}
	err := db.QueryRowContext(ctx, query, args...).Scan(
		&artisan.ID,
		&artisan.Name,
		&artisan.Bio,
		&artisan.Location,
		&artisan.Specialization,
		&artisan.Experience,
		&artisan.Story,
		&artisan.Image,
		&artisan.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrArtisanNotFound
		}
		return nil, fmt.Errorf("update artisan: %w", err)
	}

	return artisan, nil
}

// DeleteArtisan removes the artisan only. Products keep their artisan_id as a
// dangling weak reference, matching the catalog's loose ownership model.
func DeleteArtisan(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM artisans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artisan: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return database.ErrArtisanNotFound
	}

	return nil
}
