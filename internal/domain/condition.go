package domain

// Category agrupa condiciones de piel en un conjunto cerrado de categorías.
// Agregar una categoría implica actualizar el catálogo, los multiplicadores
// de metas y los máximos de normalización.
type Category string

const (
	CategoryAcne         Category = "acne"
	CategoryAging        Category = "aging"
	CategoryPigmentation Category = "pigmentation"
	CategoryHydration    Category = "hydration"
	CategoryTexture      Category = "texture"
	CategorySensitivity  Category = "sensitivity"
)

// AllCategories devuelve el conjunto cerrado en orden estable.
func AllCategories() []Category {
	return []Category{
		CategoryAcne,
		CategoryAging,
		CategoryPigmentation,
		CategoryHydration,
		CategoryTexture,
		CategorySensitivity,
	}
}

// SkinType viene del servicio de detección; puede estar ausente.
type SkinType string

const (
	SkinTypeNormal      SkinType = "NORMAL"
	SkinTypeOily        SkinType = "OILY"
	SkinTypeDry         SkinType = "DRY"
	SkinTypeCombination SkinType = "COMBINATION"
	SkinTypeSensitive   SkinType = "SENSITIVE"
)

// DetectedCondition es una condición detectada por el servicio de visión,
// ya anotada con los metadatos del catálogo. Inmutable una vez adjunta a
// un análisis.
type DetectedCondition struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Confidence     float64  `json:"confidence"`      // 0.0 - 1.0
	SeverityWeight float64  `json:"severity_weight"` // peso base del catálogo
	Description    string   `json:"description,omitempty"`
}

// CategoryScores mapea cada categoría a un porcentaje de severidad 0-100.
type CategoryScores map[Category]float64
