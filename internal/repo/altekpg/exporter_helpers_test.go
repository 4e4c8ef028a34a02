package altekpg

import (
	"testing"

	"github.com/Gunvolt24/wc_altek/internal/domain"
)

// TestDistinctKeys — дубликаты SKU схлопываются, порядок первого вхождения сохраняется.
func TestDistinctKeys(t *testing.T) {
	t.Parallel()

	items := []domain.PayloadItem{
		{SKU: "000000045"},
		{SKU: "000000100"},
		{SKU: "000000045"},
		{SKU: "SKU-9"},
	}

	keys := distinctKeys(items)
	want := []string{"000000045", "000000100", "SKU-9"}

	if len(keys) != len(want) {
		t.Fatalf("keys: want %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d]: want %q, got %q", i, want[i], keys[i])
		}
	}
}

// TestValidIdent — имя схемы как идентификатор SQL.
func TestValidIdent(t *testing.T) {
	t.Parallel()

	valid := []string{"altek", "altek_v2", "_staging"}
	invalid := []string{"", "Altek", "altek;drop", "1altek", "altek.erp", "altek-erp"}

	for _, s := range valid {
		if !validIdent(s) {
			t.Fatalf("validIdent(%q): want true", s)
		}
	}
	for _, s := range invalid {
		if validIdent(s) {
			t.Fatalf("validIdent(%q): want false", s)
		}
	}
}
