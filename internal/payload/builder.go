// Пакет payload — сборка выгружаемого представления заказа.
package payload

import (
	"fmt"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/exclusion"
	"github.com/Gunvolt24/wc_altek/pkg/sku"
)

// referenceMax — предел длины свободной ссылки в заголовке ALTEK.
const referenceMax = 60

// Build — превращает заказ в ExportPayload и списки отброшенных строк.
// Правила по каждой позиции, по порядку:
//  1. набор-родитель (группирующая строка) — молча пропускаем;
//  2. товар разрешим, SKU непуст, не исключён — в items (SKU нормализуется здесь,
//     единственная точка нормализации);
//  3. товар разрешим, но исключён — в excluded;
//  4. иначе (нет SKU) — в skipped, отдельная категория для заметок.
//
// Списки — возвращаемые значения, без состояния между вызовами.
func Build(order *domain.Order, ex exclusion.Set, schema string) (*domain.ExportPayload, []domain.ExcludedItem, []domain.SkippedItem) {
	p := &domain.ExportPayload{
		Schema:  schema,
		OrderID: order.ID,
		Customer: domain.Customer{
			Name:  order.CustomerName,
			Phone: order.CustomerPhone,
			Email: order.CustomerEmail,
		},
		Reference: truncate(reference(order), referenceMax),
	}

	var excluded []domain.ExcludedItem
	var skipped []domain.SkippedItem

	for _, item := range order.Items {
		switch {
		case item.BundleParent:
			// Группирующая строка набора: не выгружается и не учитывается.
			continue
		case item.HasProduct() && item.SKU != "" && !ex.Excluded(item.ProductID, item.SKU):
			p.Items = append(p.Items, domain.PayloadItem{
				SKU:      sku.Normalize(item.SKU),
				Name:     item.Name,
				Qty:      item.Quantity,
				Price:    item.Price,
				Discount: item.Discount,
			})
		case item.HasProduct() && ex.Excluded(item.ProductID, item.SKU):
			excluded = append(excluded, domain.ExcludedItem{
				ItemID:    item.ID,
				ProductID: item.ProductID,
				SKU:       item.SKU,
				Name:      item.Name,
				Qty:       item.Quantity,
			})
		default:
			skipped = append(skipped, domain.SkippedItem{
				ItemID: item.ID,
				Name:   item.Name,
				Qty:    item.Quantity,
			})
		}
	}

	return p, excluded, skipped
}

// reference — свободная ссылка заголовка: номер заказа магазина.
func reference(order *domain.Order) string {
	if order.Number != "" {
		return fmt.Sprintf("WEB-%s", order.Number)
	}
	return fmt.Sprintf("WEB-%d", order.ID)
}

// truncate — обрезка строки до n байт (контракт ALTEK — однобайтовые поля).
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
