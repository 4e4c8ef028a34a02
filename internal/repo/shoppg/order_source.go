package shoppg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderSource удовлетворяет интерфейсу OrderSource.
var _ ports.OrderSource = (*OrderSource)(nil)

// altekIDMetaKey — ключ метаданных заказа с внешним идентификатором ALTEK.
const altekIDMetaKey = "altek_id"

// OrderSource — чтение заказов магазина и запись заметок (pgxpool).
// Заказ для выгрузки read-only; пишем только order_notes и order_meta.
type OrderSource struct {
	pool *pgxpool.Pool
}

// NewOrderSource — конструктор OrderSource.
func NewOrderSource(pool *pgxpool.Pool) *OrderSource { return &OrderSource{pool: pool} }

// GetByID — загрузить агрегат заказа (шапка + позиции).
// Если заказа нет, возвращает (nil, nil).
func (s *OrderSource) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var (
		order    domain.Order
		datePaid sql.NullTime
	)

	err := s.pool.QueryRow(ctx, `
		SELECT id, number, status, currency, customer_name, customer_phone, customer_email,
			total, date_created, date_paid
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.Number, &order.Status, &order.Currency,
		&order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
		&order.Total, &order.DateCreated, &datePaid,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	if datePaid.Valid {
		paid := datePaid.Time
		order.DatePaid = &paid
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, COALESCE(product_id, 0), COALESCE(sku, ''), name, qty, price, discount, bundle_parent
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.SKU, &item.Name,
			&item.Quantity, &item.Price, &item.Discount, &item.BundleParent,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items rows: %w", err)
	}

	return &order, nil
}

// AddNote — дописать заметку к заказу. Только добавление, без изменений истории.
func (s *OrderSource) AddNote(ctx context.Context, orderID int64, note string) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO order_notes (order_id, note) VALUES ($1, $2)
	`, orderID, note); err != nil {
		return fmt.Errorf("insert order note: %w", err)
	}
	return nil
}

// SetAltekID — upsert ключа altek_id в метаданных заказа: факт выгрузки
// становится виден локально без похода в ALTEK.
func (s *OrderSource) SetAltekID(ctx context.Context, orderID, altekID int64) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO order_meta (order_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value
	`, orderID, altekIDMetaKey, strconv.FormatInt(altekID, 10)); err != nil {
		return fmt.Errorf("upsert altek_id meta: %w", err)
	}
	return nil
}
