package scoring

import (
	"fmt"
	"math"
	"time"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
)

const (
	horizonDays = 90

	// Umbrales de clasificación sobre |Δconfianza| a 90 días.
	fastDelta     = 0.50
	moderateDelta = 0.25
	slowDelta     = 0.08

	// worseningDelta: subida de confianza sin tratamiento que dispara
	// una advertencia.
	worseningDelta = 0.15

	// Meseta: dos análisis separados al menos esto con el Quality Score
	// casi sin moverse.
	plateauMinGapDays  = 7
	plateauMaxDelta    = 2
	driftStablePctBand = 5
)

var horizons = [3]int{30, 60, 90}

// ForecastInput agrupa lo que el proyector necesita: el historial
// ascendente del cliente, el set de condiciones más reciente, la meta
// activa y el instante de referencia (cero ⇒ ahora).
type ForecastInput struct {
	History    []domain.AnalysisRecord
	Conditions []domain.DetectedCondition
	Goal       domain.SkinGoal
	Now        time.Time
}

// Project produce la proyección completa a 30/60/90 días bajo ambos
// escenarios, alimentando las confianzas proyectadas de cada día de
// vuelta por el agregador de categorías y el calculador de salud.
//
// Nunca falla: historial de un solo análisis proyecta igual con las
// tasas default a confianza low, y entradas degeneradas se recortan.
func Project(in ForecastInput, cat *catalog.Catalog) domain.ForecastProjection {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	conds := in.Conditions
	if len(conds) == 0 && len(in.History) > 0 {
		conds = in.History[len(in.History)-1].Conditions
	}

	categoryMax := DefaultCategoryMax
	if cat != nil {
		categoryMax = cat.CategoryMax()
	}

	times := make([]time.Time, 0, len(in.History))
	for _, rec := range in.History {
		times = append(times, rec.CreatedAt)
	}

	proj := domain.ForecastProjection{
		AnalysisCount:    len(in.History),
		ConfidenceLevel:  classifyConfidence(len(in.History), historySpanDays(in.History)),
		ConsistencyScore: ConsistencyScore(times, now),
		StreakDays:       StreakDays(times, now),
		Warnings:         []string{},
	}

	if n := len(in.History); n > 0 {
		latest := in.History[n-1]
		proj.CurrentQualityScore = latest.QualityScore
		proj.CurrentSkinAge = latest.SkinAge
	} else {
		res := Score(conds, in.Goal)
		proj.CurrentQualityScore = roundInt(res.QualityScore)
		proj.CurrentSkinAge = roundInt(res.SkinAge)
	}

	// Trayectorias por condición y sets proyectados por horizonte.
	withConds := make(map[int][]domain.DetectedCondition, len(horizons))
	withoutConds := make(map[int][]domain.DetectedCondition, len(horizons))
	residualConds := make([]domain.DetectedCondition, 0, len(conds))

	proj.ConditionProjections = make([]domain.ConditionProjection, 0, len(conds))
	for _, cond := range conds {
		entry := entryFor(cat, cond.Name)
		conf0 := clamp01(cond.Confidence)

		var withAt, withoutAt [3]float64
		for i, d := range horizons {
			withAt[i] = round2(projectConfidence(conf0, entry.WithRate, d, true))
			withoutAt[i] = round2(projectConfidence(conf0, entry.WithoutRate, d, false))
			withConds[d] = append(withConds[d], condWithConfidence(cond, withAt[i]))
			withoutConds[d] = append(withoutConds[d], condWithConfidence(cond, withoutAt[i]))
		}
		residualConds = append(residualConds, condWithConfidence(cond, round2(conf0*residualFloor)))

		cp := domain.ConditionProjection{
			ID:                cond.ID,
			Name:              cond.Name,
			CurrentConfidence: conf0,
			WithProducts: domain.ConditionTrend{
				Projected30:     withAt[0],
				Projected60:     withAt[1],
				Projected90:     withAt[2],
				ImprovementRate: classifyImprovement(conf0 - withAt[2]),
				ClearByDay:      firstClearDay(conf0, entry.WithRate),
			},
			WithoutProducts: domain.ConditionDrift{
				Projected30: withoutAt[0],
				Projected60: withoutAt[1],
				Projected90: withoutAt[2],
				Message:     driftMessage(cond.Name, conf0, withoutAt[2]),
			},
		}
		if entry.Product != nil {
			cp.RecommendedProduct = &domain.ProductRef{Slug: entry.Product.Slug, Name: entry.Product.Name}
		}
		proj.ConditionProjections = append(proj.ConditionProjections, cp)

		if withoutAt[2]-conf0 >= worseningDelta {
			proj.Warnings = append(proj.Warnings, fmt.Sprintf(
				"%s is projected to worsen by %d%% within 90 days without treatment",
				cond.Name, roundInt((withoutAt[2]-conf0)*100)))
		}
	}

	proj.WithProducts = scenarioResult(withConds, in.Goal)
	proj.WithoutProducts = scenarioResult(withoutConds, in.Goal)
	achievable := round1(Score(residualConds, in.Goal).SkinAge)
	proj.WithProducts.AchievableSkinAge = &achievable

	proj.Categories = categoryOutlooks(conds, withConds[90], withoutConds[90], categoryMax)

	if plateaued(in.History) {
		proj.Warnings = append(proj.Warnings,
			"your skin metrics have plateaued across your last two analyses; consider adjusting your routine")
	}

	proj.Recommendations = Recommend(conds, cat)
	return proj
}

// projectConfidence aplica la tasa semanal del catálogo compuesta por
// día: con productos la confianza decae hacia 0 escalada por el factor
// de efectividad; sin tratamiento deriva hacia arriba. Siempre [0,1].
func projectConfidence(conf0, weeklyRate float64, day int, withProducts bool) float64 {
	weeks := float64(day) / 7
	if withProducts {
		return clamp01(conf0 * math.Pow(1-weeklyRate*ProductEffectiveness, weeks))
	}
	return clamp01(conf0 * math.Pow(1+weeklyRate, weeks))
}

// firstClearDay devuelve el primer día (0-90) en que la confianza
// proyectada con productos cae al umbral de despeje o debajo, o nil si
// a los 90 días sigue arriba.
func firstClearDay(conf0, weeklyRate float64) *int {
	for d := 0; d <= horizonDays; d++ {
		if projectConfidence(conf0, weeklyRate, d, true) <= ClearanceThreshold {
			day := d
			return &day
		}
	}
	return nil
}

func classifyImprovement(delta float64) domain.ImprovementRate {
	switch d := math.Abs(delta); {
	case d >= fastDelta:
		return domain.ImprovementFast
	case d >= moderateDelta:
		return domain.ImprovementModerate
	case d >= slowDelta:
		return domain.ImprovementSlow
	default:
		return domain.ImprovementStagnant
	}
}

func driftMessage(name string, conf0, projected90 float64) string {
	deltaPct := roundInt((projected90 - conf0) * 100)
	switch {
	case deltaPct >= driftStablePctBand:
		return fmt.Sprintf("%s may worsen by about %d%% over 90 days without care", name, deltaPct)
	case deltaPct <= -driftStablePctBand:
		return fmt.Sprintf("%s may improve by about %d%% on its own", name, -deltaPct)
	default:
		return fmt.Sprintf("%s is expected to remain roughly stable without treatment", name)
	}
}

// classifyConfidence es el calificador de respaldo histórico: nunca un
// error; un solo análisis proyecta igual, a confianza low.
func classifyConfidence(count int, spanDays float64) domain.ForecastConfidence {
	switch {
	case count >= 4 && spanDays >= 21:
		return domain.ConfidenceHigh
	case count >= 2 && spanDays >= 7:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func historySpanDays(history []domain.AnalysisRecord) float64 {
	if len(history) < 2 {
		return 0
	}
	span := history[len(history)-1].CreatedAt.Sub(history[0].CreatedAt)
	return span.Hours() / 24
}

// plateaued detecta progreso estancado: los dos últimos análisis
// separados al menos una semana con el Quality Score casi idéntico.
func plateaued(history []domain.AnalysisRecord) bool {
	n := len(history)
	if n < 2 {
		return false
	}
	prev, last := history[n-2], history[n-1]
	gapDays := last.CreatedAt.Sub(prev.CreatedAt).Hours() / 24
	if gapDays < plateauMinGapDays {
		return false
	}
	delta := last.QualityScore - prev.QualityScore
	if delta < 0 {
		delta = -delta
	}
	return delta <= plateauMaxDelta
}

func condWithConfidence(cond domain.DetectedCondition, conf float64) domain.DetectedCondition {
	cond.Confidence = conf
	return cond
}

func scenarioResult(byDay map[int][]domain.DetectedCondition, goal domain.SkinGoal) domain.ScenarioResult {
	return domain.ScenarioResult{
		QualityScore30: round1(Score(byDay[30], goal).QualityScore),
		QualityScore60: round1(Score(byDay[60], goal).QualityScore),
		QualityScore90: round1(Score(byDay[90], goal).QualityScore),
		SkinAge90:      round1(Score(byDay[90], goal).SkinAge),
	}
}

func categoryOutlooks(current, with90, without90 []domain.DetectedCondition, categoryMax float64) map[domain.Category]domain.CategoryOutlook {
	cur := AggregateCategories(current, categoryMax)
	w := AggregateCategories(with90, categoryMax)
	wo := AggregateCategories(without90, categoryMax)

	out := make(map[domain.Category]domain.CategoryOutlook, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		out[c] = domain.CategoryOutlook{
			Current:           round1(cur[c]),
			WithProducts90:    round1(w[c]),
			WithoutProducts90: round1(wo[c]),
		}
	}
	return out
}

// entryFor tolera catálogo nil (tests del núcleo puro) resolviendo a la
// misma entrada conservadora que usa el catálogo embebido.
func entryFor(cat *catalog.Catalog, name string) catalog.Entry {
	if cat != nil {
		return cat.Lookup(name)
	}
	return catalog.Entry{
		Name:        name,
		Category:    domain.CategoryTexture,
		BaseWeight:  5,
		WithRate:    0.15,
		WithoutRate: 0.01,
	}
}
