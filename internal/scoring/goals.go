package scoring

import "ayonne-skin/internal/domain"

// GoalMultipliers mapea la meta activa a un multiplicador de rigurosidad
// por categoría, aplicado elemento a elemento antes de sumar al Quality
// Score. Cada fila promedia exactamente 1.0 sobre las seis categorías,
// así la meta default no sesga el puntaje base.
//
// El switch es exhaustivo sobre la enumeración SkinGoal: agregar una
// meta exige agregar su fila acá.
func GoalMultipliers(goal domain.SkinGoal) map[domain.Category]float64 {
	switch goal {
	case domain.GoalAgeGracefully:
		return map[domain.Category]float64{
			domain.CategoryAcne:         0.8,
			domain.CategoryAging:        1.5,
			domain.CategoryPigmentation: 1.1,
			domain.CategoryHydration:    1.0,
			domain.CategoryTexture:      1.0,
			domain.CategorySensitivity:  0.6,
		}
	case domain.GoalClearBlemishes:
		return map[domain.Category]float64{
			domain.CategoryAcne:         1.6,
			domain.CategoryAging:        0.7,
			domain.CategoryPigmentation: 1.0,
			domain.CategoryHydration:    0.8,
			domain.CategoryTexture:      1.1,
			domain.CategorySensitivity:  0.8,
		}
	case domain.GoalEvenTone:
		return map[domain.Category]float64{
			domain.CategoryAcne:         0.9,
			domain.CategoryAging:        0.8,
			domain.CategoryPigmentation: 1.6,
			domain.CategoryHydration:    0.6,
			domain.CategoryTexture:      1.0,
			domain.CategorySensitivity:  1.1,
		}
	case domain.GoalHydrate:
		return map[domain.Category]float64{
			domain.CategoryAcne:         0.7,
			domain.CategoryAging:        0.8,
			domain.CategoryPigmentation: 0.6,
			domain.CategoryHydration:    1.7,
			domain.CategoryTexture:      1.0,
			domain.CategorySensitivity:  1.2,
		}
	case domain.GoalBalanced:
		return balancedMultipliers()
	}
	// Identificadores fuera de la enumeración puntúan como BALANCED.
	return balancedMultipliers()
}

func balancedMultipliers() map[domain.Category]float64 {
	m := make(map[domain.Category]float64, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		m[c] = 1.0
	}
	return m
}
