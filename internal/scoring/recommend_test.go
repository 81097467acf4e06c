package scoring

import (
	"testing"

	"ayonne-skin/internal/domain"
)

func TestRecommendRanksAndDeduplicates(t *testing.T) {
	cat := mustCatalog(t)
	conds := []domain.DetectedCondition{
		// Acne y Whiteheads apuntan ambos al clarifying-serum: debe
		// quedar una sola entrada con el mejor puntaje.
		testCondition(t, cat, "Acne", 0.8),
		testCondition(t, cat, "Whiteheads", 0.6),
		testCondition(t, cat, "Dryness", 0.4),
	}

	recs := Recommend(conds, cat)

	if len(recs) != 2 {
		t.Fatalf("expected 2 deduplicated recommendations, got %d: %+v", len(recs), recs)
	}
	if recs[0].Slug != "clarifying-serum" {
		t.Fatalf("expected clarifying-serum ranked first, got %s", recs[0].Slug)
	}
	// Acne: 0.8*9*0.90 = 6.48 debe ganarle al puntaje de Whiteheads.
	if recs[0].Score != 6.48 {
		t.Fatalf("expected best score 6.48 for the deduplicated product, got %v", recs[0].Score)
	}
	if recs[1].Score > recs[0].Score {
		t.Fatalf("expected descending ranking, got %+v", recs)
	}
}

func TestRecommendSkipsTrivialSeverity(t *testing.T) {
	cat := mustCatalog(t)
	conds := []domain.DetectedCondition{
		testCondition(t, cat, "Enlarged Pores", 0.1), // 0.1*4 = 0.4, bajo el umbral
	}

	if recs := Recommend(conds, cat); len(recs) != 0 {
		t.Fatalf("expected no recommendations for trivial severity, got %+v", recs)
	}
}

func TestRecommendCapsAtFour(t *testing.T) {
	cat := mustCatalog(t)
	conds := []domain.DetectedCondition{
		testCondition(t, cat, "Acne", 0.9),
		testCondition(t, cat, "Wrinkles", 0.8),
		testCondition(t, cat, "Dark Spots", 0.7),
		testCondition(t, cat, "Dryness", 0.7),
		testCondition(t, cat, "Redness", 0.7),
		testCondition(t, cat, "Uneven Texture", 0.8),
	}

	recs := Recommend(conds, cat)
	if len(recs) != maxRecommendations {
		t.Fatalf("expected recommendations capped at %d, got %d", maxRecommendations, len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("ranking not descending at %d: %+v", i, recs)
		}
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	cat := mustCatalog(t)
	if recs := Recommend(nil, cat); len(recs) != 0 {
		t.Fatalf("expected no recommendations for empty input, got %+v", recs)
	}
}
