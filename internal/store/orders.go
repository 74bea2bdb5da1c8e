package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/models"
)

type CreateOrderParams struct {
	PaymentMethod string
	Currency      string
	Shipping      *AddressParams
}

// CreateOrder turns the user's cart into an order. The cart snapshot, the
// order insert and the cart clear run in one serializable transaction: either
// the order exists and the cart is empty, or neither happened.
func CreateOrder(ctx context.Context, db *sql.DB, userID string, params CreateOrderParams) (*models.Order, error) {
	currency := params.Currency
	if currency == "" {
		currency = "INR"
	}

	var orderID string

	err := database.WithRetry(ctx, db, database.TxOptions{
		IsolationLevel: sql.LevelSerializable,
		MaxRetries:     3,
	}, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT c.product_id, c.quantity, p.name, COALESCE(p.discounted_price, p.original_price)
			FROM cart_items c
			JOIN products p ON p.id = c.product_id
			WHERE c.user_id = $1
			ORDER BY c.created_at`, userID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}

		type line struct {
			productID string
			name      string
			quantity  int
			unitPrice decimal.Decimal
		}
		var lines []line
		for rows.Next() {
			var l line
			if err := rows.Scan(&l.productID, &l.quantity, &l.name, &l.unitPrice); err != nil {
				rows.Close()
				return fmt.Errorf("scan cart line: %w", err)
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows error: %w", err)
		}

		if len(lines) == 0 {
			return database.ErrEmptyCart
		}

		var total decimal.Decimal
		for _, l := range lines {
			total = total.Add(l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity))))
		}

		orderID = uuid.New().String()

		var shipFirst, shipLast, shipStreet, shipCity, shipState, shipZip, shipCountry, shipPhone interface{}
		if s := params.Shipping; s != nil {
			shipFirst = s.FirstName
			shipLast = s.LastName
			shipStreet = s.StreetAddress
			shipCity = s.City
			shipState = s.State
			shipZip = s.ZipCode
			shipCountry = s.Country
			if s.Phone != nil {
				shipPhone = *s.Phone
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO orders (id, user_id, total_amount, currency, status, payment_method,
				ship_first_name, ship_last_name, ship_street, ship_city, ship_state, ship_zip,
				ship_country, ship_phone, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())`,
			orderID, userID, total, currency, models.OrderStatusPending, params.PaymentMethod,
			shipFirst, shipLast, shipStreet, shipCity, shipState, shipZip, shipCountry, shipPhone)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, l := range lines {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
				uuid.New().String(), orderID, l.productID, l.name, l.quantity, l.unitPrice)
			if err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(ctx, db, orderID)
}

func scanOrder(row productRow) (*models.Order, error) {
	order := &models.Order{}

	var (
		tracking  sql.NullString
		shipFirst sql.NullString
		shipLast  sql.NullString
		shipStr   sql.NullString
		shipCity  sql.NullString
		shipState sql.NullString
		shipZip   sql.NullString
		shipCtry  sql.NullString
		shipPhone sql.NullString
	)

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Currency,
		&order.Status,
		&tracking,
		&order.PaymentMethod,
		&shipFirst,
		&shipLast,
		&shipStr,
		&shipCity,
		&shipState,
		&shipZip,
		&shipCtry,
		&shipPhone,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tracking.Valid {
		order.TrackingNumber = &tracking.String
	}
	if shipStr.Valid {
		addr := &models.Address{
			FirstName:     shipFirst.String,
			LastName:      shipLast.String,
			StreetAddress: shipStr.String,
			City:          shipCity.String,
			State:         shipState.String,
			ZipCode:       shipZip.String,
			Country:       shipCtry.String,
		}
		if shipPhone.Valid {
			addr.Phone = &shipPhone.String
		}
		order.ShippingAddr = addr
	}

	return order, nil
}

const orderColumns = `id, user_id, total_amount, currency, status, tracking_number, payment_method,
	ship_first_name, ship_last_name, ship_street, ship_city, ship_state, ship_zip,
	ship_country, ship_phone, created_at`

func GetOrder(ctx context.Context, db *sql.DB, id string) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	order, err := scanOrder(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := listOrderItems(ctx, db, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrderForUser is GetOrder with an ownership check. A foreign order is
// reported as not found, never as forbidden, to avoid leaking its existence.
func GetOrderForUser(ctx context.Context, db *sql.DB, userID, id string) (*models.Order, error) {
	order, err := GetOrder(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, database.ErrOrderNotFound
	}
	return order, nil
}

func listOrderItems(ctx context.Context, db *sql.DB, orderID string) ([]models.OrderItem, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

func ListOrdersByUser(ctx context.Context, db *sql.DB, userID string) ([]models.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, orderColumns)

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range orders {
		items, err := listOrderItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// ListOrdersCursor pages through all orders newest first, keyset-paginated on
// (created_at, id). Used by the admin back-office.
func ListOrdersCursor(ctx context.Context, db *sql.DB, cursor string, limit int) (*CursorPage, error) {
	cursorData, hasCursor, err := DecodeCursor(cursor)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM orders`, orderColumns)
	args := []interface{}{}
	if hasCursor {
		query += ` WHERE (created_at, id) < ($1, $2)`
		args = append(args, cursorData.CreatedAt, cursorData.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	hasMore := len(orders) > limit
	if hasMore {
		orders = orders[:limit]
	}

	for i := range orders {
		items, err := listOrderItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	var nextCursor string
	if hasMore && len(orders) > 0 {
		last := orders[len(orders)-1]
		nextCursor = EncodeCursor(OrderCursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	return &CursorPage{
		Items:      orders,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

// UpdateOrderStatus moves an order along the allowed-transition table. The
// current row is locked so concurrent updates cannot skip a state.
func UpdateOrderStatus(ctx context.Context, db *sql.DB, id string, next models.OrderStatus, trackingNumber *string) (*models.Order, error) {
	if !next.Valid() {
		return nil, database.ErrInvalidTransition
	}

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		var current models.OrderStatus
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if err == sql.ErrNoRows {
				return database.ErrOrderNotFound
			}
			return fmt.Errorf("lock order: %w", err)
		}

		if !current.CanTransitionTo(next) {
			return database.ErrInvalidTransition
		}

		if trackingNumber != nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE orders SET status = $1, tracking_number = $2 WHERE id = $3`,
				next, *trackingNumber, id)
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE orders SET status = $1 WHERE id = $2`, next, id)
		}
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(ctx, db, id)
}

// CancelOrder is the customer-facing cancel: it requires ownership and a
// status that is still cancellable (pending or processing).
func CancelOrder(ctx context.Context, db *sql.DB, userID, id string) (*models.Order, error) {
	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		var ownerID string
		var current models.OrderStatus
		err := tx.QueryRowContext(ctx,
			`SELECT user_id, status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&ownerID, &current)
		if err != nil {
			if err == sql.ErrNoRows {
				return database.ErrOrderNotFound
			}
			return fmt.Errorf("lock order: %w", err)
		}

		if ownerID != userID {
			return database.ErrOrderNotFound
		}
		if !current.Cancellable() {
			return database.ErrNotCancellable
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE orders SET status = $1 WHERE id = $2`, models.OrderStatusCancelled, id); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(ctx, db, id)
}
