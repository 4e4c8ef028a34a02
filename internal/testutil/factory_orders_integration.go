//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/wc_altek/internal/domain"
)

// UniqID — случайный положительный id, чтобы тесты не пересекались по данным.
func UniqID() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:]) % (1 << 62))
}

// MakeOrder — мини-генератор заказа магазина с одной обычной позицией.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	id := UniqID()
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		ID:            id,
		Number:        fmt.Sprintf("N-%d", id),
		Status:        "processing",
		Currency:      "RUB",
		CustomerName:  "Иван Иванов",
		CustomerPhone: "+7 900 000-00-00",
		CustomerEmail: "ivan@example.com",
		Total:         1500,
		DateCreated:   now,
		Items: []domain.Item{
			{
				ID:        UniqID(),
				ProductID: 1001,
				SKU:       "45", // нормализуется в 000000045 при сборке payload
				Name:      "Виджет",
				Quantity:  2,
				Price:     750,
				Discount:  0,
			},
		},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithItems — переопределить позиции заказа.
func WithItems(items ...domain.Item) func(*domain.Order) {
	return func(o *domain.Order) { o.Items = items }
}

// SeedOrder — записывает заказ с позициями в таблицы магазина.
func SeedOrder(ctx context.Context, pool *pgxpool.Pool, o *domain.Order) error {
	if _, err := pool.Exec(ctx, `
		INSERT INTO orders (id, number, status, currency, customer_name, customer_phone, customer_email,
			total, date_created, date_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, o.ID, o.Number, o.Status, o.Currency, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		o.Total, o.DateCreated, o.DatePaid); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}

	for _, it := range o.Items {
		if _, err := pool.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, sku, name, qty, price, discount, bundle_parent)
			VALUES ($1, $2, NULLIF($3, 0), NULLIF($4, ''), $5, $6, $7, $8, $9)
		`, it.ID, o.ID, it.ProductID, it.SKU, it.Name, it.Quantity, it.Price, it.Discount, it.BundleParent); err != nil {
			return fmt.Errorf("seed order item: %w", err)
		}
	}
	return nil
}

// SeedCatalog — записывает позиции каталога ALTEK (sku уже нормализованные).
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, skus ...string) error {
	for _, sku := range skus {
		if _, err := pool.Exec(ctx, `
			INSERT INTO altek.catalog_item (sku, name) VALUES ($1, $2)
			ON CONFLICT (sku) DO NOTHING
		`, sku, "catalog "+sku); err != nil {
			return fmt.Errorf("seed catalog item %s: %w", sku, err)
		}
	}
	return nil
}

// CountHeaderAndDetails — число шапок и позиций по external_order_id.
func CountHeaderAndDetails(ctx context.Context, pool *pgxpool.Pool, orderID int64) (headers, details int, err error) {
	err = pool.QueryRow(ctx, `
		SELECT count(*),
			COALESCE((SELECT count(*) FROM altek.order_detail d
				JOIN altek.order_header h2 ON h2.id = d.header_id
				WHERE h2.external_order_id = $1), 0)
		FROM altek.order_header h WHERE h.external_order_id = $1
	`, orderID).Scan(&headers, &details)
	return headers, details, err
}
