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

const addressColumns = `id, user_id, first_name, last_name, street_address, city, state,
	zip_code, country, phone, is_default, created_at`

type AddressParams struct {
	FirstName     string
	LastName      string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Country       string
	Phone         *string
	IsDefault     bool
}

// UpdateAddressParams carries a partial update. Nil fields keep the stored value.
type UpdateAddressParams struct {
	FirstName     *string
	LastName      *string
	StreetAddress *string
	City          *string
	State         *string
	ZipCode       *string
	Country       *string
	Phone         *string
	IsDefault     *bool
}

func scanAddress(row productRow) (*models.Address, error) {
	address := &models.Address{}
	var phone sql.NullString

	err := row.Scan(
		&address.ID,
		&address.UserID,
		&address.FirstName,
		&address.LastName,
		&address.StreetAddress,
		&address.City,
		&address.State,
		&address.ZipCode,
		&address.Country,
		&phone,
		&address.IsDefault,
		&address.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		address.Phone = &phone.String
	}
	return address, nil
}

// CreateAddress inserts an address. When IsDefault is set, every other address
// of the same user is demoted inside the same transaction so exactly one
// default remains.
func CreateAddress(ctx context.Context, db *sql.DB, userID string, params AddressParams) (*models.Address, error) {
	var address *models.Address

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		if params.IsDefault {
			if err := clearDefaults(ctx, tx, userID); err != nil {
				return err
			}
		}

		query := fmt.Sprintf(`
			INSERT INTO addresses (id, user_id, first_name, last_name, street_address, city, state,
				zip_code, country, phone, is_default, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			RETURNING %s`, addressColumns)

		row := tx.QueryRowContext(ctx, query,
			uuid.New().String(),
			userID,
			params.FirstName,
			params.LastName,
			params.StreetAddress,
			params.City,
			params.State,
			params.ZipCode,
			params.Country,
			params.Phone,
			params.IsDefault,
		)

		var err error
		address, err = scanAddress(row)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func GetAddress(ctx context.Context, db *sql.DB, userID, id string) (*models.Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM addresses WHERE id = $1 AND user_id = $2`, addressColumns)

	address, err := scanAddress(db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrAddressNotFound
		}
		return nil, fmt.Errorf("get address: %w", err)
	}

	return address, nil
}

func ListAddresses(ctx context.Context, db *sql.DB, userID string) ([]models.Address, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`, addressColumns)

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, *address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return addresses, nil
}

func UpdateAddress(ctx context.Context, db *sql.DB, userID, id string, params UpdateAddressParams) (*models.Address, error) {
	var address *models.Address

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		if params.IsDefault != nil && *params.IsDefault {
			if err := clearDefaults(ctx, tx, userID); err != nil {
				return err
			}
		}

		set := []string{}
		args := []interface{}{}
		add := func(column string, value interface{}) {
			args = append(args, value)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}

		if params.FirstName != nil {
			add("first_name", *params.FirstName)
		}
		if params.LastName != nil {
			add("last_name", *params.LastName)
		}
		if params.StreetAddress != nil {
			add("street_address", *params.StreetAddress)
		}
		if params.City != nil {
			add("city", *params.City)
		}
		if params.State != nil {
			add("state", *params.State)
		}
		if params.ZipCode != nil {
			add("zip_code", *params.ZipCode)
		}
		if params.Country != nil {
			add("country", *params.Country)
		}
		if params.Phone != nil {
			add("phone", *params.Phone)
		}
		if params.IsDefault != nil {
			add("is_default", *params.IsDefault)
		}

		if len(set) == 0 {
			var err error
			address, err = getAddressTx(ctx, tx, userID, id)
			return err
		}

		args = append(args, id, userID)
		query := fmt.Sprintf(`
			UPDATE addresses
			SET %s
			WHERE id = $%d AND user_id = $%d
			RETURNING %s`, strings.Join(set, ", "), len(args)-1, len(args), addressColumns)

		var err error
		address, err = scanAddress(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if err == sql.ErrNoRows {
				return database.ErrAddressNotFound
			}
			return fmt.Errorf("update address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func DeleteAddress(ctx context.Context, db *sql.DB, userID, id string) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return database.ErrAddressNotFound
	}

	return nil
}

func clearDefaults(ctx context.Context, tx *sql.Tx, userID string) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE addresses SET is_default = FALSE WHERE user_id = $1 AND is_default`, userID); err != nil {
		return fmt.Errorf("clear default addresses: %w", err)
	}
	return nil
}

func getAddressTx(ctx context.Context, tx *sql.Tx, userID, id string) (*models.Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM addresses WHERE id = $1 AND user_id = $2`, addressColumns)

	address, err := scanAddress(tx.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrAddressNotFound
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return address, nil
}
