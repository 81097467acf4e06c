package catalog

import (
	"testing"

	"ayonne-skin/internal/domain"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("expected embedded catalog to load, got %v", err)
	}
	if cat.Version() == "" {
		t.Fatalf("expected non-empty catalog version")
	}
	if cat.CategoryMax() <= 0 {
		t.Fatalf("expected positive category max, got %v", cat.CategoryMax())
	}
	if cat.Len() == 0 {
		t.Fatalf("expected catalog with known conditions")
	}
}

func TestLookupKnownCondition(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	tests := []struct {
		name     string
		category domain.Category
	}{
		{"Acne", domain.CategoryAcne},
		{"Wrinkles", domain.CategoryAging},
		{"Dark Spots", domain.CategoryPigmentation},
		{"Dryness", domain.CategoryHydration},
		{"Uneven Texture", domain.CategoryTexture},
		{"Redness", domain.CategorySensitivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := cat.Lookup(tt.name)
			if !e.Known {
				t.Fatalf("expected %q to be a known condition", tt.name)
			}
			if e.Category != tt.category {
				t.Fatalf("expected category %s, got %s", tt.category, e.Category)
			}
			if e.BaseWeight <= 0 {
				t.Fatalf("expected positive base weight, got %v", e.BaseWeight)
			}
		})
	}
}

func TestLookupIsCaseAndSpaceInsensitive(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	for _, name := range []string{"acne", "ACNE", "  Acne  "} {
		e := cat.Lookup(name)
		if !e.Known || e.Category != domain.CategoryAcne {
			t.Fatalf("expected %q to resolve to the Acne entry, got %+v", name, e)
		}
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	e := cat.Lookup("Mystery Condition")
	if e.Known {
		t.Fatalf("expected unknown condition to be flagged Known=false")
	}
	if e.Name != "Mystery Condition" {
		t.Fatalf("expected fallback entry to keep the original name, got %q", e.Name)
	}
	if e.BaseWeight <= 0 || e.WithRate <= 0 {
		t.Fatalf("expected conservative default rates, got %+v", e)
	}
}

func TestEveryEntryHasSaneRates(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	for name, e := range cat.entries {
		if e.WithRate <= 0 || e.WithRate >= 1 {
			t.Errorf("%s: with_rate out of range: %v", name, e.WithRate)
		}
		if e.WithoutRate < 0 || e.WithoutRate >= 1 {
			t.Errorf("%s: without_rate out of range: %v", name, e.WithoutRate)
		}
		if e.Product != nil && (e.Product.Effectiveness <= 0 || e.Product.Effectiveness > 1) {
			t.Errorf("%s: product effectiveness out of range: %v", name, e.Product.Effectiveness)
		}
	}
}

func TestParseRejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing version", "category_max: 25\ndefault: {category: texture, base_weight: 5, with_rate: 0.06, without_rate: 0.01}"},
		{"bad category", "version: v1\ncategory_max: 25\ndefault: {category: nope, base_weight: 5, with_rate: 0.06, without_rate: 0.01}"},
		{"negative weight", "version: v1\ncategory_max: 25\ndefault: {category: texture, base_weight: -1, with_rate: 0.06, without_rate: 0.01}"},
		{"rate above one", "version: v1\ncategory_max: 25\ndefault: {category: texture, base_weight: 5, with_rate: 1.2, without_rate: 0.01}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Fatalf("expected parse error for %s", tt.name)
			}
		})
	}
}
