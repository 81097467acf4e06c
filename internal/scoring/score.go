package scoring

import "ayonne-skin/internal/domain"

// ScoreResult es la salida del calculador de salud para un conjunto de
// condiciones bajo una meta.
type ScoreResult struct {
	QualityScore float64 // 0-100, mayor es mejor
	SkinAge      float64 // 18-90 años percibidos
}

// Score combina severidades ponderadas por confianza y meta en el
// Quality Score, y deriva la edad de piel percibida pesando más las
// contribuciones de la categoría aging. Conjunto vacío ⇒ 100 puntos y
// edad base. Confianzas y pesos fuera de rango se recortan, nunca se
// rechazan.
func Score(conds []domain.DetectedCondition, goal domain.SkinGoal) ScoreResult {
	mult := GoalMultipliers(goal)

	var totalWeighted, agingRaw, otherRaw float64
	for _, cond := range conds {
		conf := clamp01(cond.Confidence)
		weight := weightOrZero(cond.SeverityWeight)
		cat := categoryOrFallback(cond.Category)

		totalWeighted += conf * weight * mult[cat]

		// La edad de piel usa severidades sin ajuste de meta: la meta
		// cambia qué te importa, no cuántos años aparenta la piel.
		if cat == domain.CategoryAging {
			agingRaw += conf * weight
		} else {
			otherRaw += conf * weight
		}
	}

	totalWeighted = clamp(totalWeighted, 0, 100)
	age := BaselineSkinAge + agingAgeFactor*agingRaw + otherAgeFactor*otherRaw

	return ScoreResult{
		QualityScore: 100 - totalWeighted,
		SkinAge:      clamp(age, MinSkinAge, MaxSkinAge),
	}
}
