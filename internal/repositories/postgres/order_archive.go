package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/csakala/tableside/internal/models"
)

// OrderArchive persists finished orders for audit and offline reporting. Line
// items are stored as a JSONB snapshot, matching their immutability in the
// state store.
type OrderArchive struct {
	pool *pgxpool.Pool
}

func NewOrderArchive(pool *pgxpool.Pool) *OrderArchive {
	return &OrderArchive{pool: pool}
}

func (r *OrderArchive) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO order_archive (
            id, table_number, customer_name, customer_phone, customer_email,
            items, total, status, placed_at, estimated_time, payment_method,
            payment_status, delivery_type, priority, currency
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
        )
        ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status
    `

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.TableNumber,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		items,
		order.Total,
		order.Status,
		order.Timestamp,
		order.EstimatedTime,
		order.PaymentMethod,
		order.PaymentStatus,
		order.DeliveryType,
		order.Priority,
		order.Currency,
	)
	return err
}

func (r *OrderArchive) GetAll(ctx context.Context) ([]*models.Order, error) {
	query := `
        SELECT
            id, table_number, customer_name, customer_phone, customer_email,
            items, total, status, placed_at, estimated_time, payment_method,
            payment_status, delivery_type, priority, currency
        FROM order_archive
        ORDER BY placed_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var order models.Order
		var items []byte
		if err := rows.Scan(
			&order.ID,
			&order.TableNumber,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.CustomerEmail,
			&items,
			&order.Total,
			&order.Status,
			&order.Timestamp,
			&order.EstimatedTime,
			&order.PaymentMethod,
			&order.PaymentStatus,
			&order.DeliveryType,
			&order.Priority,
			&order.Currency,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderArchive) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_archive`).Scan(&count)
	return count, err
}

func (r *OrderArchive) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM order_archive`)
	return err
}
