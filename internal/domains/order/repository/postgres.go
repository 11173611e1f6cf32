package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashionstore-backend/internal/domains/order"
	"fashionstore-backend/pkg/database"
)

const orderColumns = `
	id, user_id, total, status, payment_status,
	shipping_name, shipping_phone, shipping_address, shipping_city,
	shipping_postal_code, shipping_country,
	created_at, updated_at`

const itemColumns = `id, order_id, product_id, product_name, quantity, size, unit_price`

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) order.Repository {
	return &postgresRepository{db: db}
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Total, &o.Status, &o.PaymentStatus,
		&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress, &o.ShippingCity,
		&o.ShippingPostalCode, &o.ShippingCountry,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create insert order + items trong một transaction
func (r *postgresRepository) Create(ctx context.Context, o *order.Order) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		orderQuery := `
			INSERT INTO orders (
				id, user_id, total, status, payment_status,
				shipping_name, shipping_phone, shipping_address, shipping_city,
				shipping_postal_code, shipping_country,
				created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

		_, err := tx.Exec(ctx, orderQuery,
			o.ID, o.UserID, o.Total, o.Status, o.PaymentStatus,
			o.ShippingName, o.ShippingPhone, o.ShippingAddress, o.ShippingCity,
			o.ShippingPostalCode, o.ShippingCountry,
			o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, size, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		for _, item := range o.Items {
			_, err := tx.Exec(ctx, itemQuery,
				item.ID, item.OrderID, item.ProductID, item.ProductName,
				item.Quantity, item.Size, item.UnitPrice,
			)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		return nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.loadItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	o.Items = items[id]
	return o, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, orderColumns)

	orders, err := r.queryOrders(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders)
}

func (r *postgresRepository) List(ctx context.Context, req order.ListOrdersRequest) ([]order.Order, int, error) {
	where := ""
	args := []interface{}{}
	if req.Status != "" {
		where = "WHERE status = $1"
		args = append(args, req.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM orders %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	listQuery := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)
	args = append(args, req.Limit, offset)

	orders, err := r.queryOrders(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	orders, err = r.attachItems(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// ========================================
// HELPERS
// ========================================

func (r *postgresRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// attachItems load items cho một batch orders bằng một query duy nhất
func (r *postgresRepository) attachItems(ctx context.Context, orders []order.Order) ([]order.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *postgresRepository) loadItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]order.OrderItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM order_items WHERE order_id = ANY($1) ORDER BY id`, itemColumns)

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]order.OrderItem)
	for rows.Next() {
		var item order.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Size, &item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	return itemsByOrder, rows.Err()
}
