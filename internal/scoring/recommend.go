package scoring

import (
	"fmt"
	"sort"
	"strings"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
)

const (
	// recommendMinContribution: contribución de severidad (confianza ×
	// peso) mínima para que una condición amerite producto.
	recommendMinContribution = 1.5

	maxRecommendations = 4
)

// Recommend selecciona los productos del catálogo que mejor atacan las
// condiciones con severidad no trivial, puntuados por contribución ×
// efectividad, deduplicados por producto y rankeados de mayor a menor.
func Recommend(conds []domain.DetectedCondition, cat *catalog.Catalog) []domain.ProductRecommendation {
	best := make(map[string]domain.ProductRecommendation)

	for _, cond := range conds {
		entry := entryFor(cat, cond.Name)
		if entry.Product == nil {
			continue
		}

		contribution := clamp01(cond.Confidence) * weightOrZero(cond.SeverityWeight)
		if contribution < recommendMinContribution {
			continue
		}

		score := round2(contribution * entry.Product.Effectiveness)
		if cur, ok := best[entry.Product.Slug]; ok && cur.Score >= score {
			continue
		}
		best[entry.Product.Slug] = domain.ProductRecommendation{
			Slug:   entry.Product.Slug,
			Name:   entry.Product.Name,
			Reason: fmt.Sprintf("targets %s", strings.ToLower(cond.Name)),
			Score:  score,
		}
	}

	out := make([]domain.ProductRecommendation, 0, len(best))
	for _, rec := range best {
		out = append(out, rec)
	}
	// Orden determinista: puntaje descendente, slug como desempate.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Slug < out[j].Slug
	})

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}
