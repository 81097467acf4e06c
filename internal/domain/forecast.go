package domain

// ForecastConfidence indica cuánto respaldo histórico tiene una proyección.
type ForecastConfidence string

const (
	ConfidenceLow    ForecastConfidence = "low"
	ConfidenceMedium ForecastConfidence = "medium"
	ConfidenceHigh   ForecastConfidence = "high"
)

// ImprovementRate clasifica la magnitud del cambio proyectado a 90 días.
type ImprovementRate string

const (
	ImprovementFast     ImprovementRate = "fast"
	ImprovementModerate ImprovementRate = "moderate"
	ImprovementSlow     ImprovementRate = "slow"
	ImprovementStagnant ImprovementRate = "stagnant"
)

// ScenarioResult resume un escenario (con o sin rutina de productos) en
// los tres horizontes fijos.
type ScenarioResult struct {
	QualityScore30    float64  `json:"quality_score_30"`
	QualityScore60    float64  `json:"quality_score_60"`
	QualityScore90    float64  `json:"quality_score_90"`
	SkinAge90         float64  `json:"skin_age_90"`
	AchievableSkinAge *float64 `json:"achievable_skin_age,omitempty"` // solo con productos
}

// ConditionTrend es la trayectoria de una condición siguiendo la rutina.
type ConditionTrend struct {
	Projected30     float64         `json:"projected_30"`
	Projected60     float64         `json:"projected_60"`
	Projected90     float64         `json:"projected_90"`
	ImprovementRate ImprovementRate `json:"improvement_rate"`
	ClearByDay      *int            `json:"clear_by_day"` // nil si no baja del umbral en 90 días
}

// ConditionDrift es la deriva natural de una condición sin tratamiento.
type ConditionDrift struct {
	Projected30 float64 `json:"projected_30"`
	Projected60 float64 `json:"projected_60"`
	Projected90 float64 `json:"projected_90"`
	Message     string  `json:"message"`
}

// ProductRef referencia el producto recomendado del catálogo para una
// condición.
type ProductRef struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ConditionProjection combina ambos escenarios para una condición.
type ConditionProjection struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	CurrentConfidence  float64        `json:"current_confidence"`
	WithProducts       ConditionTrend `json:"with_products"`
	WithoutProducts    ConditionDrift `json:"without_products"`
	RecommendedProduct *ProductRef    `json:"recommended_product,omitempty"`
}

// CategoryOutlook compara la severidad actual de una categoría contra
// ambos escenarios a 90 días.
type CategoryOutlook struct {
	Current           float64 `json:"current"`
	WithProducts90    float64 `json:"with_products_90"`
	WithoutProducts90 float64 `json:"without_products_90"`
}

// ProductRecommendation es una recomendación rankeada para presentación.
type ProductRecommendation struct {
	Slug   string  `json:"slug"`
	Name   string  `json:"name"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

// ForecastProjection es la proyección completa de tendencia. Nunca se
// persiste: se recalcula bajo demanda desde el historial de análisis.
type ForecastProjection struct {
	CurrentQualityScore  int                          `json:"current_quality_score"`
	CurrentSkinAge       int                          `json:"current_skin_age"`
	AnalysisCount        int                          `json:"analysis_count"`
	ConfidenceLevel      ForecastConfidence           `json:"confidence_level"`
	ConsistencyScore     int                          `json:"consistency_score"`
	StreakDays           int                          `json:"streak_days"`
	WithProducts         ScenarioResult               `json:"with_products"`
	WithoutProducts      ScenarioResult               `json:"without_products"`
	ConditionProjections []ConditionProjection        `json:"condition_projections"`
	Categories           map[Category]CategoryOutlook `json:"categories"`
	Warnings             []string                     `json:"warnings"`
	Recommendations      []ProductRecommendation      `json:"recommendations"`
}
