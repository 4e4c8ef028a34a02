package altekhttp_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/export/altekhttp"
	"github.com/goccy/go-json"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Debugf(context.Context, string, ...any) {}

func testPayload() *domain.ExportPayload {
	return &domain.ExportPayload{
		Schema:    "altek",
		OrderID:   42,
		Customer:  domain.Customer{Name: "Ana", Phone: "+57", Email: "ana@example.com"},
		Reference: "WEB-42",
		Items: []domain.PayloadItem{
			{SKU: "000000045", Name: "Tornillo", Qty: 2, Price: 10},
		},
	}
}

// TestExport_Success — 2xx от сервера даёт Created; заголовки и тело на месте.
func TestExport_Success(t *testing.T) {
	t.Parallel()

	var gotAuth, gotFrom string
	var gotPayload domain.ExportPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.Header.Get("X-From")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	e := altekhttp.NewExporter(srv.URL, "secret_x", 5*time.Second, noopLogger{})

	out, err := e.Export(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if out.Kind != domain.OutcomeCreated {
		t.Fatalf("outcome: want created, got %+v", out)
	}
	if gotAuth != "Bearer secret_x" || gotFrom != "shop-export" {
		t.Fatalf("headers wrong: auth=%q from=%q", gotAuth, gotFrom)
	}
	if gotPayload.OrderID != 42 || len(gotPayload.Items) != 1 || gotPayload.Items[0].SKU != "000000045" {
		t.Fatalf("payload wrong: %+v", gotPayload)
	}
}

// TestExport_BadStatus — не-2xx превращается в отказ с кодом и телом.
func TestExport_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	e := altekhttp.NewExporter(srv.URL, "", 5*time.Second, noopLogger{})

	out, err := e.Export(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if !out.Failed() || out.Failure != domain.FailureWrite {
		t.Fatalf("outcome: want write failure, got %+v", out)
	}
	if !strings.Contains(out.Message, "status 502") || !strings.Contains(out.Message, "upstream down") {
		t.Fatalf("message must carry status and body: %q", out.Message)
	}
}

// TestExport_NoEndpoint — пустой endpoint это ошибка конфигурации, не Outcome.
func TestExport_NoEndpoint(t *testing.T) {
	t.Parallel()

	e := altekhttp.NewExporter("", "key", 5*time.Second, noopLogger{})

	_, err := e.Export(context.Background(), testPayload())
	if !errors.Is(err, altekhttp.ErrNoEndpoint) {
		t.Fatalf("want ErrNoEndpoint, got %v", err)
	}
}

// TestExport_ConnectionRefused — недоступный сервер даёт ошибку связи.
func TestExport_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // адрес валиден, но соединение уже не открыть

	e := altekhttp.NewExporter(srv.URL, "", 5*time.Second, noopLogger{})

	if _, err := e.Export(context.Background(), testPayload()); err == nil {
		t.Fatal("want connectivity error")
	}
}
