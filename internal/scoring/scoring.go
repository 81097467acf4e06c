// Package scoring implementa el núcleo puro de puntaje y proyección:
// agregación por categoría, ajuste por meta, Quality Score / Skin Age,
// racha y consistencia del historial, y el proyector de pronóstico a
// 30/60/90 días. Todas las funciones son síncronas, deterministas y sin
// estado compartido: entradas idénticas producen salidas idénticas, y
// cualquier cantidad de callers puede invocarlas en paralelo.
//
// Nada acá devuelve error: valores fuera de rango se recortan al borde
// válido y nombres desconocidos resuelven a la entrada default del
// catálogo, porque el consumidor es una experiencia de usuario en tiempo
// real que siempre debe renderizar algo.
package scoring

import "math"

const (
	// BaselineSkinAge es la edad percibida con piel sin condiciones.
	BaselineSkinAge = 30.0
	MinSkinAge      = 18.0
	MaxSkinAge      = 90.0

	// ProductEffectiveness es el factor asumido de adherencia/efecto de
	// la rutina recomendada sobre la tasa semanal del catálogo.
	ProductEffectiveness = 0.85

	// ClearanceThreshold: confianza proyectada a la que una condición se
	// considera despejada.
	ClearanceThreshold = 0.05

	// residualFloor: fracción de confianza que ni la mejor rutina
	// elimina; define la asíntota de AchievableSkinAge.
	residualFloor = 0.10

	// DefaultCategoryMax se usa si no hay catálogo disponible; el valor
	// real vive en catalog.yaml.
	DefaultCategoryMax = 25.0

	// Pesos de la edad de piel: las contribuciones de la categoría aging
	// pesan más que el resto.
	agingAgeFactor = 0.8
	otherAgeFactor = 0.1
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
