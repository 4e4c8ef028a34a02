package ports

import (
	"context"

	"github.com/Gunvolt24/wc_altek/internal/domain"
)

// Exporter — транспорт выгрузки в ALTEK. Вариант (прямая запись в БД
// или legacy HTTP) выбирается конфигурацией, ядро о нём не знает.
//
// Контракт: payload непустой (проверено вызывающим); отказы внутри
// транспорта возвращаются как Outcome с Kind=failure и nil-ошибкой;
// error не-nil только когда транспорт не настроен или недоступен.
type Exporter interface {
	Export(ctx context.Context, payload *domain.ExportPayload) (domain.Outcome, error)
}
