package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/exclusion"
	"github.com/Gunvolt24/wc_altek/internal/payload"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/Gunvolt24/wc_altek/pkg/metrics"
)

// Проверка, что ExportService удовлетворяет интерфейсу ExportService.
var _ ports.ExportService = (*ExportService)(nil)

// ErrOrderNotFound — заказ с таким id в магазине отсутствует.
var ErrOrderNotFound = errors.New("order not found")

// ErrAllExcluded — все позиции заказа исключены настройками; транзакция
// к ALTEK не открывалась.
var ErrAllExcluded = errors.New("all order items are excluded")

// ExportService — прикладная логика выгрузки заказа (без знаний о транспорте).
type ExportService struct {
	source     ports.OrderSource // доступ к заказам магазина
	exporter   ports.Exporter    // транспорт выгрузки (БД или legacy HTTP)
	log        ports.Logger      // прямой доступ к логгеру
	exclusions string            // сырой текст исключений; разбирается на каждый вызов
	schema     string            // целевая схема/namespace ALTEK
}

// NewExportService — DI-конструктор.
func NewExportService(
	source ports.OrderSource,
	exporter ports.Exporter,
	log ports.Logger,
	exclusions, schema string,
) *ExportService {
	return &ExportService{
		source:     source,
		exporter:   exporter,
		log:        log,
		exclusions: exclusions,
		schema:     schema,
	}
}

// ExportOrder — одна попытка выгрузки заказа, синхронно и до конца:
//  1. загрузка заказа (нет заказа — ErrOrderNotFound);
//  2. сборка payload с фильтром исключений (набор строится заново из настроек);
//  3. заметки об исключённых и пропущенных позициях;
//  4. пустой payload — отказ all_excluded, транспорт не вызывается;
//  5. транспорт → заметка об итоге; altek_id сохраняется в метаданные заказа.
//
// Сбои заметок логируются, но выгрузку не валят: итог уже зафиксирован в ALTEK.
func (s *ExportService) ExportOrder(ctx context.Context, orderID int64) (domain.Outcome, error) {
	start := time.Now()

	order, err := s.source.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "source.GetByID failed order_id=%d err=%v", orderID, err)
		return domain.Outcome{}, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil {
		return domain.Outcome{}, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}

	ex := exclusion.Parse(s.exclusions)
	p, excluded, skipped := payload.Build(order, ex, s.schema)
	s.log.Debugf(ctx, "payload built order_id=%d items=%d excluded=%d skipped=%d",
		orderID, len(p.Items), len(excluded), len(skipped))

	if len(excluded) > 0 {
		metrics.ExcludedItemsTotal.Add(float64(len(excluded)))
		s.note(ctx, orderID, excludedNote(excluded))
	}
	if len(skipped) > 0 {
		// Отдельная категория: не исключение, а отсутствие SKU у строки.
		s.note(ctx, orderID, skippedNote(skipped))
	}

	// Пустая выгрузка: движок не вызывается, транзакция не открывается.
	if len(p.Items) == 0 {
		out := domain.Fail(domain.FailureAllExcluded,
			fmt.Sprintf("order %d not sent: all products are excluded by configuration", orderID))
		s.note(ctx, orderID, "ALTEK: not sent. All products of the order are excluded by configuration.")
		s.finish(ctx, orderID, out, start)
		return out, fmt.Errorf("order %d: %w", orderID, ErrAllExcluded)
	}

	out, err := s.exporter.Export(ctx, p)
	if err != nil {
		// Транспорт не настроен или недоступен: до транзакции дело не дошло.
		s.log.Errorf(ctx, "export failed order_id=%d err=%v", orderID, err)
		s.note(ctx, orderID, fmt.Sprintf("ALTEK: failed to send - %v", err))
		metrics.ExportsTotal.WithLabelValues("failed").Inc()
		return domain.Outcome{}, fmt.Errorf("export order %d: %w", orderID, err)
	}

	switch out.Kind {
	case domain.OutcomeCreated:
		s.note(ctx, orderID, fmt.Sprintf("ALTEK: sent successfully. %s", out.Message))
	case domain.OutcomeIdempotent:
		s.note(ctx, orderID, fmt.Sprintf("ALTEK: already exported, nothing written. %s", out.Message))
	case domain.OutcomeFailure:
		s.note(ctx, orderID, fmt.Sprintf("ALTEK: export error - %s", out.Message))
	}

	if out.AltekID > 0 {
		if metaErr := s.source.SetAltekID(ctx, orderID, out.AltekID); metaErr != nil {
			s.log.Warnf(ctx, "SetAltekID failed order_id=%d err=%v", orderID, metaErr)
		}
	}

	s.finish(ctx, orderID, out, start)

	return out, out.Err()
}

// ExportOrders — обёртка по списку id: ошибки собираются per-id,
// неудача одного заказа не прерывает остальные.
func (s *ExportService) ExportOrders(ctx context.Context, orderIDs []int64) map[int64]error {
	failures := make(map[int64]error)
	for _, id := range orderIDs {
		if _, err := s.ExportOrder(ctx, id); err != nil {
			failures[id] = err
		}
	}
	return failures
}

// note — дописывает заметку к заказу; сбой не фатален.
func (s *ExportService) note(ctx context.Context, orderID int64, text string) {
	if err := s.source.AddNote(ctx, orderID, text); err != nil {
		s.log.Warnf(ctx, "AddNote failed order_id=%d err=%v", orderID, err)
	}
}

// finish — метрики и итоговый лог одной попытки.
func (s *ExportService) finish(ctx context.Context, orderID int64, out domain.Outcome, start time.Time) {
	result := string(out.Kind)
	if out.Failed() {
		result = "failed"
	}
	metrics.ExportsTotal.WithLabelValues(result).Inc()
	metrics.ExportDuration.Observe(time.Since(start).Seconds())
	s.log.Infof(ctx, "export finished order_id=%d result=%s took=%s", orderID, result, time.Since(start))
}

// excludedNote — заметка со списком исключённых позиций (формат исходной интеграции).
func excludedNote(excluded []domain.ExcludedItem) string {
	labels := make([]string, 0, len(excluded))
	for _, x := range excluded {
		var parts []string
		if x.SKU != "" {
			parts = append(parts, "SKU: "+x.SKU)
		}
		if x.ProductID > 0 {
			parts = append(parts, fmt.Sprintf("ID: %d", x.ProductID))
		}
		parts = append(parts, "Name: "+x.Name)
		labels = append(labels, strings.Join(parts, " | "))
	}
	return fmt.Sprintf("ALTEK: %d product(s) excluded by configuration:\n- %s",
		len(excluded), strings.Join(labels, "\n- "))
}

// skippedNote — заметка о строках без SKU, не попавших в выгрузку.
func skippedNote(skipped []domain.SkippedItem) string {
	labels := make([]string, 0, len(skipped))
	for _, x := range skipped {
		labels = append(labels, fmt.Sprintf("%s (line %d)", x.Name, x.ItemID))
	}
	return fmt.Sprintf("ALTEK: %d line(s) skipped - no catalog key:\n- %s",
		len(skipped), strings.Join(labels, "\n- "))
}
