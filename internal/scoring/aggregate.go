package scoring

import "ayonne-skin/internal/domain"

// AggregateCategories suma confidence × peso por categoría, normaliza
// contra el máximo fijo por categoría y recorta a 0-100. La misma
// función puntúa el estado actual o un estado futuro hipotético: las
// confianzas proyectadas pasan por acá sin ningún camino especial.
func AggregateCategories(conds []domain.DetectedCondition, categoryMax float64) domain.CategoryScores {
	if categoryMax <= 0 {
		categoryMax = DefaultCategoryMax
	}

	scores := make(domain.CategoryScores, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		scores[c] = 0
	}

	for _, cond := range conds {
		cat := categoryOrFallback(cond.Category)
		scores[cat] += clamp01(cond.Confidence) * weightOrZero(cond.SeverityWeight)
	}

	for c, raw := range scores {
		scores[c] = clamp(raw/categoryMax*100, 0, 100)
	}
	return scores
}

// categoryOrFallback resuelve categorías vacías o fuera del conjunto
// cerrado a texture, la categoría de la entrada default del catálogo.
func categoryOrFallback(cat domain.Category) domain.Category {
	for _, c := range domain.AllCategories() {
		if c == cat {
			return c
		}
	}
	return domain.CategoryTexture
}

// weightOrZero recorta pesos negativos; nunca rechaza la entrada.
func weightOrZero(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}
