package kafka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/usecase"
	"github.com/Gunvolt24/wc_altek/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// exportRequest — тело сообщения: запрос на выгрузку одного заказа.
type exportRequest struct {
	OrderID int64 `json:"order_id"`
}

// handleMessage обрабатывает одно сообщение и определяет нужно ли коммитить оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	req, err := decodeRequest(msg.Value)
	if err != nil {
		// Мусор в сообщении: логируем и коммитим, чтобы не обрабатывать повторно
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid export request offset=%d: %v (skipped)", msg.Offset, err)
		return true
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	_, exportErr := c.service.ExportOrder(ctxTimeout, req.OrderID)
	cancel()

	switch {
	case exportErr == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPermanent(exportErr):
		// Повтор не изменит итог (нет заказа / всё исключено / SKU не в каталоге):
		// коммитим, чтобы сообщение не зациклилось.
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "export rejected order_id=%d offset=%d: %v (skipped)", req.OrderID, msg.Offset, exportErr)
		return true
	default:
		// Временная ошибка (связь/запись): НЕ коммитим — повторная доставка,
		// идемпотентность движка делает повтор безопасным.
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "export failed order_id=%d offset=%d: %v (will retry without commit)", req.OrderID, msg.Offset, exportErr)
		return false
	}
}

// decodeRequest — строгий разбор запроса: неизвестные поля и хвост запрещены.
func decodeRequest(raw []byte) (exportRequest, error) {
	var req exportRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return exportRequest{}, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return exportRequest{}, errors.New("invalid json: trailing data")
	}
	if req.OrderID <= 0 {
		return exportRequest{}, fmt.Errorf("invalid order_id: %d", req.OrderID)
	}
	return req, nil
}

// isPermanent — отказ, который не исправится повторной доставкой.
func isPermanent(err error) bool {
	if errors.Is(err, usecase.ErrOrderNotFound) || errors.Is(err, usecase.ErrAllExcluded) {
		return true
	}
	var fe *domain.FailureError
	return errors.As(err, &fe) && fe.Kind == domain.FailureResolution
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
