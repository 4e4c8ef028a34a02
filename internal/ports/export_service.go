package ports

import (
	"context"

	"github.com/Gunvolt24/wc_altek/internal/domain"
)

// ExportService — прикладная операция выгрузки (для транспортных слоёв).
type ExportService interface {
	// ExportOrder — одна попытка выгрузки заказа; Outcome описывает итог,
	// error не-nil при любом отказе (для агрегирования в bulk-обёртках).
	ExportOrder(ctx context.Context, orderID int64) (domain.Outcome, error)

	// ExportOrders — обёртка по списку id: ошибки собираются per-id,
	// первая неудача не прерывает остальные.
	ExportOrders(ctx context.Context, orderIDs []int64) map[int64]error
}
