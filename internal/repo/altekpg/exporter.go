package altekpg

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что Exporter удовлетворяет интерфейсу Exporter.
var _ ports.Exporter = (*Exporter)(nil)

// uniqueViolation — код Postgres для нарушения уникальности
// (гонка двух одновременных выгрузок одного заказа на external_order_id).
const uniqueViolation = "23505"

// Exporter — транзакционный движок выгрузки: проверка идемпотентности,
// разрешение SKU по каталогу и атомарная вставка шапки с позициями.
// Все запросы параметризованы; payload приходит с уже нормализованными SKU.
type Exporter struct {
	pool   *pgxpool.Pool
	schema string
	log    ports.Logger
}

// NewExporter — конструктор. Схема подставляется в SQL как идентификатор,
// поэтому проверяется здесь, а не в каждом запросе.
func NewExporter(pool *pgxpool.Pool, schema string, log ports.Logger) (*Exporter, error) {
	if !validIdent(schema) {
		return nil, fmt.Errorf("invalid altek schema name %q", schema)
	}
	return &Exporter{pool: pool, schema: schema, log: log}, nil
}

// Export — одна попытка выгрузки, целиком внутри одной транзакции:
//  1. идемпотентность: заказ уже в шапках → rollback и Idempotent;
//  2. разрешение всех SKU одним запросом; любой ненайденный — отказ
//     с перечислением всех отсутствующих ключей;
//  3. вставка шапки (RETURNING id);
//  4. вставка позиций по id из шага 2;
//  5. commit.
//
// Любой сбой на шагах 2–5 откатывает транзакцию целиком: частичная
// запись не должна быть видна. Ошибка (не Outcome) возвращается только
// если транзакцию не удалось открыть.
func (e *Exporter) Export(ctx context.Context, p *domain.ExportPayload) (domain.Outcome, error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("begin altek transaction: %w", err)
	}
	defer func() {
		// На уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			e.log.Warnf(ctx, "altek rollback failed order_id=%d: %v", p.OrderID, rbErr)
		}
	}()

	// 1) Идемпотентность: ищем шапку с нашим external_order_id.
	var existingID int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM `+e.table("order_header")+` WHERE external_order_id = $1`,
		p.OrderID,
	).Scan(&existingID)
	switch {
	case err == nil:
		// Уже выгружен: откат (ничего не записано) и успешный no-op.
		e.log.Debugf(ctx, "idempotency hit order_id=%d altek_id=%d", p.OrderID, existingID)
		return domain.Idempotent(existingID,
			fmt.Sprintf("order %d already exported as ALTEK %d", p.OrderID, existingID)), nil
	case !errors.Is(err, pgx.ErrNoRows):
		return domain.Fail(domain.FailureWrite,
			fmt.Sprintf("idempotency check for order %d: %v", p.OrderID, err)), nil
	}

	// 2) Разрешение SKU по каталогу одним запросом.
	catalog, missing, err := e.resolveCatalog(ctx, tx, p.Items)
	if err != nil {
		return domain.Fail(domain.FailureWrite,
			fmt.Sprintf("catalog lookup for order %d: %v", p.OrderID, err)), nil
	}
	if len(missing) > 0 {
		return domain.Fail(domain.FailureResolution,
			fmt.Sprintf("catalog keys not found in ALTEK: %s", strings.Join(missing, ", "))), nil
	}
	e.log.Debugf(ctx, "catalog resolved order_id=%d keys=%d", p.OrderID, len(catalog))

	// 3) Шапка.
	var headerID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO `+e.table("order_header")+`
			(reference, customer_name, customer_phone, customer_email, external_order_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Reference, p.Customer.Name, p.Customer.Phone, p.Customer.Email, p.OrderID,
	).Scan(&headerID)
	if err != nil {
		if isUniqueViolation(err) {
			// Проиграли гонку конкурентной выгрузке: повтор попадёт в ветку Idempotent.
			return domain.Fail(domain.FailureWrite,
				fmt.Sprintf("order %d inserted by a concurrent export attempt: %v", p.OrderID, err)), nil
		}
		return domain.Fail(domain.FailureWrite,
			fmt.Sprintf("insert header for order %d: %v", p.OrderID, err)), nil
	}
	e.log.Debugf(ctx, "header inserted order_id=%d altek_id=%d", p.OrderID, headerID)

	// 4) Позиции.
	for _, item := range p.Items {
		catalogID, ok := catalog[item.SKU]
		if !ok {
			// Не должно случаться после шага 2; страхует расхождение нормализации.
			return domain.Fail(domain.FailureResolution,
				fmt.Sprintf("catalog key not resolved: %s", item.SKU)), nil
		}
		if _, err = tx.Exec(ctx,
			`INSERT INTO `+e.table("order_detail")+`
				(header_id, catalog_id, name, qty, price, discount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			headerID, catalogID, item.Name, item.Qty, item.Price, item.Discount,
		); err != nil {
			return domain.Fail(domain.FailureWrite,
				fmt.Sprintf("insert detail (sku %s) for order %d: %v", item.SKU, p.OrderID, err)), nil
		}
	}

	// 5) Фиксация.
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return domain.Fail(domain.FailureWrite,
				fmt.Sprintf("order %d inserted by a concurrent export attempt: %v", p.OrderID, err)), nil
		}
		return domain.Fail(domain.FailureWrite,
			fmt.Sprintf("commit export of order %d: %v", p.OrderID, err)), nil
	}

	return domain.Created(headerID,
		fmt.Sprintf("order %d exported to ALTEK as %d (%d items)", p.OrderID, headerID, len(p.Items))), nil
}

// resolveCatalog — разрешает все различные SKU позиций одним запросом.
// Возвращает карту sku → catalog id и отсортированный список ненайденных.
func (e *Exporter) resolveCatalog(ctx context.Context, tx pgx.Tx, items []domain.PayloadItem) (map[string]int64, []string, error) {
	keys := distinctKeys(items)

	rows, err := tx.Query(ctx,
		`SELECT sku, id FROM `+e.table("catalog_item")+` WHERE sku = ANY($1::text[])`,
		keys,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	resolved := make(map[string]int64, len(keys))
	for rows.Next() {
		var (
			key string
			id  int64
		)
		if err := rows.Scan(&key, &id); err != nil {
			return nil, nil, err
		}
		resolved[key] = id
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// Разность множеств: запрошенные минус разрешённые, все сразу.
	var missing []string
	for _, k := range keys {
		if _, ok := resolved[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)

	return resolved, missing, nil
}

// distinctKeys — различные SKU позиций с сохранением порядка первого вхождения.
func distinctKeys(items []domain.PayloadItem) []string {
	seen := make(map[string]struct{}, len(items))
	keys := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.SKU]; ok {
			continue
		}
		seen[it.SKU] = struct{}{}
		keys = append(keys, it.SKU)
	}
	return keys
}

// table — полное имя таблицы в настроенной схеме.
func (e *Exporter) table(name string) string {
	return e.schema + "." + name
}

// validIdent — допустимый идентификатор схемы (подставляется в SQL как есть).
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// isUniqueViolation — ошибка Postgres с кодом 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
