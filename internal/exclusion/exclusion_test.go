package exclusion_test

import (
	"testing"

	"github.com/Gunvolt24/wc_altek/internal/exclusion"
)

// TestParse_TokensAndKinds — цифровые токены становятся ID, остальные — SKU.
func TestParse_TokensAndKinds(t *testing.T) {
	t.Parallel()

	set := exclusion.Parse("SKU123, sku-abc-999\n1024 2048,\t77")

	if set.Empty() {
		t.Fatal("set must not be empty")
	}
	if !set.Excluded(1024, "") || !set.Excluded(2048, "") || !set.Excluded(77, "") {
		t.Fatal("numeric tokens must match by product id")
	}
	if !set.Excluded(0, "SKU123") || !set.Excluded(0, "sku123") {
		t.Fatal("sku match must be case-insensitive")
	}
	if !set.Excluded(5, "SKU-ABC-999") {
		t.Fatal("mixed-case sku must match lowercased entry")
	}
	if set.Excluded(500, "other") {
		t.Fatal("unrelated product must not match")
	}
}

// TestParse_Empty — пустой и пробельный ввод дают пустой набор.
func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\n\t,,  ,\n"} {
		set := exclusion.Parse(raw)
		if !set.Empty() {
			t.Fatalf("Parse(%q): want empty set", raw)
		}
		if set.Excluded(1, "anything") {
			t.Fatalf("Parse(%q): empty set must match nothing", raw)
		}
	}
}

// TestExcluded_LeadingZeroToken — токен с ведущими нулями трактуется как числовой ID.
func TestExcluded_LeadingZeroToken(t *testing.T) {
	t.Parallel()

	// "0012" — цифры, попадает в ID-набор как 12.
	set := exclusion.Parse("0012")
	if !set.Excluded(12, "") {
		t.Fatal("leading-zero numeric token must match product id 12")
	}
}
