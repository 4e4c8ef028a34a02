package ports

import (
	"context"

	"github.com/Gunvolt24/wc_altek/internal/domain"
)

// OrderSource — доступ к заказам исходной коммерческой системы.
// Заказ для нас read-only; обратно пишутся только заметки и altek_id.
type OrderSource interface {
	// GetByID — загрузить агрегат заказа (шапка + позиции).
	// Если заказа нет, возвращает (nil, nil).
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// AddNote — дописать человекочитаемую заметку к заказу.
	// Только добавление; прежние заметки не трогаются.
	AddNote(ctx context.Context, orderID int64, note string) error

	// SetAltekID — сохранить внешний идентификатор ALTEK в метаданных заказа,
	// чтобы факт выгрузки был виден локально без похода в ALTEK.
	SetAltekID(ctx context.Context, orderID, altekID int64) error
}
