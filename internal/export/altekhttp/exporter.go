// Пакет altekhttp — устаревший HTTP-путь выгрузки в ALTEK.
// Оставлен как второй вариант транспорта; выбирается конфигурацией.
package altekhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/goccy/go-json"
)

// Проверка, что Exporter удовлетворяет интерфейсу Exporter.
var _ ports.Exporter = (*Exporter)(nil)

// ErrNoEndpoint — HTTP-путь не настроен (пустой endpoint).
var ErrNoEndpoint = errors.New("altek endpoint is not configured")

// maxErrorBody — сколько байт тела ответа попадает в сообщение об ошибке.
const maxErrorBody = 1 << 10

// Exporter — POST payload'а на endpoint ALTEK c Bearer-авторизацией.
// Идентификатор ALTEK этот путь не возвращает: сервер ALTEK сам пишет
// в свою базу, Outcome несёт только факт принятия.
type Exporter struct {
	endpoint string
	apiKey   string
	client   *http.Client
	log      ports.Logger
}

// NewExporter — конструктор. timeout уже с нижней границей (config).
func NewExporter(endpoint, apiKey string, timeout time.Duration, log ports.Logger) *Exporter {
	return &Exporter{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Export — отправка одного заказа. Ошибка (не Outcome) возвращается,
// когда endpoint не задан или соединение не удалось открыть; ответ
// вне 2xx — отказ выгрузки с кодом и телом ответа.
func (e *Exporter) Export(ctx context.Context, p *domain.ExportPayload) (domain.Outcome, error) {
	if e.endpoint == "" {
		return domain.Outcome{}, ErrNoEndpoint
	}

	body, err := json.Marshal(p)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-From", "shop-export")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	e.log.Debugf(ctx, "POST %s order_id=%d bytes=%d", e.endpoint, p.OrderID, len(body))

	resp, err := e.client.Do(req)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("altek endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	e.log.Debugf(ctx, "response order_id=%d status=%d body=%s", p.OrderID, resp.StatusCode, respBody)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Fail(domain.FailureWrite,
			fmt.Sprintf("ALTEK returned status %d - %s", resp.StatusCode, respBody)), nil
	}

	return domain.Created(0,
		fmt.Sprintf("order %d accepted by ALTEK endpoint", p.OrderID)), nil
}
