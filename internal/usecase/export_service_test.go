package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/ports/mocks"
	"github.com/Gunvolt24/wc_altek/internal/usecase"
	"github.com/golang/mock/gomock"
)

const (
	orderID = int64(501)
	schema  = "altek"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Debugf(context.Context, string, ...any) {}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     orderID,
		Number: "501",
		Items: []domain.Item{
			{ID: 1, ProductID: 10, SKU: "45", Name: "Tornillo", Quantity: 2, Price: 10},
			{ID: 2, ProductID: 11, SKU: "EXCLUDED1", Name: "Muestra", Quantity: 1, Price: 5},
		},
	}
}

// TestExportOrder_CreatedWithExclusions — штатный путь: исключённая позиция
// попадает в заметку, нормализованный payload уходит в транспорт,
// altek_id сохраняется в метаданные.
func TestExportOrder_CreatedWithExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(), nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, note string) error {
			if !strings.Contains(note, "excluded") || !strings.Contains(note, "EXCLUDED1") {
				t.Fatalf("exclusion note wrong: %q", note)
			}
			return nil
		})
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.ExportPayload) (domain.Outcome, error) {
			if len(p.Items) != 1 || p.Items[0].SKU != "000000045" {
				t.Fatalf("payload items wrong: %+v", p.Items)
			}
			if p.OrderID != orderID || p.Schema != schema {
				t.Fatalf("payload header wrong: %+v", p)
			}
			return domain.Created(77, "order 501 exported to ALTEK as 77 (1 items)"), nil
		})
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, note string) error {
			if !strings.Contains(note, "sent successfully") {
				t.Fatalf("success note wrong: %q", note)
			}
			return nil
		})
	source.EXPECT().SetAltekID(gomock.Any(), orderID, int64(77)).Return(nil)

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "EXCLUDED1", schema)

	out, err := svc.ExportOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("ExportOrder error: %v", err)
	}
	if out.Kind != domain.OutcomeCreated || out.AltekID != 77 {
		t.Fatalf("outcome wrong: %+v", out)
	}
}

// TestExportOrder_AllExcluded — транспорт не вызывается, заметка и ErrAllExcluded.
func TestExportOrder_AllExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl) // без EXPECT: любой вызов — ошибка теста

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(), nil)
	// Две заметки: список исключённых + итоговая "not sent".
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).Return(nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, note string) error {
			if !strings.Contains(note, "not sent") {
				t.Fatalf("terminal note wrong: %q", note)
			}
			return nil
		})

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "10, EXCLUDED1", schema)

	out, err := svc.ExportOrder(context.Background(), orderID)
	if !errors.Is(err, usecase.ErrAllExcluded) {
		t.Fatalf("want ErrAllExcluded, got %v", err)
	}
	if !out.Failed() || out.Failure != domain.FailureAllExcluded {
		t.Fatalf("outcome wrong: %+v", out)
	}
}

// TestExportOrder_Idempotent — повторная выгрузка: заметка-скип, altek_id обновлён.
func TestExportOrder_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(), nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).Return(nil).Times(2)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).
		Return(domain.Idempotent(77, "order 501 already exported as ALTEK 77"), nil)
	source.EXPECT().SetAltekID(gomock.Any(), orderID, int64(77)).Return(nil)

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "EXCLUDED1", schema)

	out, err := svc.ExportOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("ExportOrder error: %v", err)
	}
	if out.Kind != domain.OutcomeIdempotent || out.AltekID != 77 {
		t.Fatalf("outcome wrong: %+v", out)
	}
}

// TestExportOrder_NotFound — (nil, nil) от источника превращается в ErrOrderNotFound.
func TestExportOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, nil)

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "", schema)

	if _, err := svc.ExportOrder(context.Background(), orderID); !errors.Is(err, usecase.ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

// TestExportOrder_ResolutionFailure — отказ движка становится ошибкой с тем же текстом.
func TestExportOrder_ResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(), nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).Return(nil) // exclusion note
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).
		Return(domain.Fail(domain.FailureResolution, "catalog keys not found in ALTEK: 000000045"), nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, note string) error {
			if !strings.Contains(note, "000000045") {
				t.Fatalf("failure note must name missing keys: %q", note)
			}
			return nil
		})

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "EXCLUDED1", schema)

	out, err := svc.ExportOrder(context.Background(), orderID)
	if err == nil || !strings.Contains(err.Error(), "000000045") {
		t.Fatalf("error must name missing keys, got %v", err)
	}
	if !out.Failed() || out.Failure != domain.FailureResolution {
		t.Fatalf("outcome wrong: %+v", out)
	}
}

// TestExportOrder_NoteFailureDoesNotFailExport — сбой заметки не валит выгрузку.
func TestExportOrder_NoteFailureDoesNotFailExport(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	source.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(), nil)
	source.EXPECT().AddNote(gomock.Any(), orderID, gomock.Any()).
		Return(errors.New("notes table is locked")).Times(2)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).
		Return(domain.Created(12, "ok"), nil)
	source.EXPECT().SetAltekID(gomock.Any(), orderID, int64(12)).Return(nil)

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "EXCLUDED1", schema)

	out, err := svc.ExportOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("ExportOrder error: %v", err)
	}
	if out.Kind != domain.OutcomeCreated {
		t.Fatalf("outcome wrong: %+v", out)
	}
}

// TestExportOrders_PartialFailure — bulk собирает ошибки per-id и не прерывается.
func TestExportOrders_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := mocks.NewMockOrderSource(ctrl)
	exporter := mocks.NewMockExporter(ctrl)

	ok := testOrder()
	bad := &domain.Order{ID: 502, Number: "502"} // без позиций — пустая выгрузка

	source.EXPECT().GetByID(gomock.Any(), int64(501)).Return(ok, nil)
	source.EXPECT().GetByID(gomock.Any(), int64(502)).Return(bad, nil)
	source.EXPECT().GetByID(gomock.Any(), int64(503)).Return(nil, nil)
	source.EXPECT().AddNote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	source.EXPECT().SetAltekID(gomock.Any(), int64(501), int64(9)).Return(nil)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any()).
		Return(domain.Created(9, "ok"), nil)

	svc := usecase.NewExportService(source, exporter, noopLogger{}, "EXCLUDED1", schema)

	failures := svc.ExportOrders(context.Background(), []int64{501, 502, 503})

	if len(failures) != 2 {
		t.Fatalf("failures: want 2, got %v", failures)
	}
	if _, ok := failures[501]; ok {
		t.Fatalf("order 501 must succeed: %v", failures)
	}
	if !errors.Is(failures[502], usecase.ErrAllExcluded) {
		t.Fatalf("order 502: want ErrAllExcluded, got %v", failures[502])
	}
	if !errors.Is(failures[503], usecase.ErrOrderNotFound) {
		t.Fatalf("order 503: want ErrOrderNotFound, got %v", failures[503])
	}
}
