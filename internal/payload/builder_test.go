package payload_test

import (
	"strings"
	"testing"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/exclusion"
	"github.com/Gunvolt24/wc_altek/internal/payload"
)

const schema = "altek"

// TestBuild_ExclusionAndNormalization — сценарий из договорённости:
// SKU "45" нормализуется, "EXCLUDED1" уходит в excluded.
func TestBuild_ExclusionAndNormalization(t *testing.T) {
	t.Parallel()

	order := &domain.Order{
		ID:     501,
		Number: "501",
		Items: []domain.Item{
			{ID: 1, ProductID: 10, SKU: "45", Name: "Tornillo", Quantity: 2, Price: 10.0},
			{ID: 2, ProductID: 11, SKU: "EXCLUDED1", Name: "Muestra", Quantity: 1, Price: 5.0},
		},
	}

	p, excluded, skipped := payload.Build(order, exclusion.Parse("EXCLUDED1"), schema)

	if len(p.Items) != 1 {
		t.Fatalf("items: want 1, got %d", len(p.Items))
	}
	got := p.Items[0]
	if got.SKU != "000000045" || got.Qty != 2 || got.Price != 10.0 {
		t.Fatalf("unexpected item: %+v", got)
	}
	if len(excluded) != 1 || excluded[0].SKU != "EXCLUDED1" || excluded[0].ItemID != 2 {
		t.Fatalf("unexpected excluded: %+v", excluded)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped: %+v", skipped)
	}
	if p.OrderID != 501 || p.Schema != schema {
		t.Fatalf("unexpected payload header: %+v", p)
	}
}

// TestBuild_BundleParent — родитель набора не попадает ни в items, ни в excluded, ни в skipped.
func TestBuild_BundleParent(t *testing.T) {
	t.Parallel()

	order := &domain.Order{
		ID: 7,
		Items: []domain.Item{
			{ID: 1, Name: "Kit hogar", BundleParent: true},
			{ID: 2, ProductID: 21, SKU: "100", Name: "Parte A", Quantity: 1, Price: 3},
			{ID: 3, ProductID: 22, SKU: "200", Name: "Parte B", Quantity: 1, Price: 4},
		},
	}

	p, excluded, skipped := payload.Build(order, exclusion.Parse(""), schema)

	if len(p.Items) != 2 {
		t.Fatalf("items: want 2 children, got %d", len(p.Items))
	}
	if len(excluded) != 0 || len(skipped) != 0 {
		t.Fatalf("bundle parent leaked: excluded=%+v skipped=%+v", excluded, skipped)
	}
}

// TestBuild_NoSkuGoesToSkipped — строка без SKU (и не набор) уходит в skipped.
func TestBuild_NoSkuGoesToSkipped(t *testing.T) {
	t.Parallel()

	order := &domain.Order{
		ID: 8,
		Items: []domain.Item{
			{ID: 1, ProductID: 31, SKU: "", Name: "Sin codigo", Quantity: 1},
			{ID: 2, ProductID: 0, SKU: "", Name: "Producto borrado", Quantity: 2},
			{ID: 3, ProductID: 32, SKU: "77", Name: "Normal", Quantity: 1, Price: 2},
		},
	}

	p, excluded, skipped := payload.Build(order, exclusion.Parse(""), schema)

	if len(p.Items) != 1 || p.Items[0].SKU != "000000077" {
		t.Fatalf("unexpected items: %+v", p.Items)
	}
	if len(excluded) != 0 {
		t.Fatalf("unexpected excluded: %+v", excluded)
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped: want 2, got %+v", skipped)
	}
}

// TestBuild_ExcludedByProductID — исключение по числовому ID, SKU не важен.
func TestBuild_ExcludedByProductID(t *testing.T) {
	t.Parallel()

	order := &domain.Order{
		ID: 9,
		Items: []domain.Item{
			{ID: 1, ProductID: 1024, SKU: "ABC-1", Name: "Por ID", Quantity: 1},
		},
	}

	p, excluded, _ := payload.Build(order, exclusion.Parse("1024"), schema)

	if len(p.Items) != 0 {
		t.Fatalf("items must be empty, got %+v", p.Items)
	}
	if len(excluded) != 1 || excluded[0].ProductID != 1024 {
		t.Fatalf("unexpected excluded: %+v", excluded)
	}
}

// TestBuild_ReferenceTruncated — ссылка обрезается до 60 символов.
func TestBuild_ReferenceTruncated(t *testing.T) {
	t.Parallel()

	order := &domain.Order{
		ID:     10,
		Number: strings.Repeat("9", 100),
	}

	p, _, _ := payload.Build(order, exclusion.Parse(""), schema)

	if len(p.Reference) != 60 {
		t.Fatalf("reference length: want 60, got %d (%q)", len(p.Reference), p.Reference)
	}
	if !strings.HasPrefix(p.Reference, "WEB-") {
		t.Fatalf("reference prefix lost: %q", p.Reference)
	}
}
