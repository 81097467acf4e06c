package domain

import "strings"

// SkinGoal es la meta de cuidado elegida por el cliente. Enumeración
// cerrada: agregar una meta exige agregar su fila de multiplicadores
// en el paquete scoring.
type SkinGoal string

const (
	GoalAgeGracefully  SkinGoal = "AGE_GRACEFULLY"
	GoalClearBlemishes SkinGoal = "CLEAR_BLEMISHES"
	GoalEvenTone       SkinGoal = "EVEN_TONE"
	GoalHydrate        SkinGoal = "HYDRATE"
	GoalBalanced       SkinGoal = "BALANCED" // default cuando no hay meta activa
)

// AllSkinGoals devuelve la enumeración completa en orden estable.
func AllSkinGoals() []SkinGoal {
	return []SkinGoal{
		GoalAgeGracefully,
		GoalClearBlemishes,
		GoalEvenTone,
		GoalHydrate,
		GoalBalanced,
	}
}

// ParseSkinGoal valida un identificador externo contra la enumeración.
func ParseSkinGoal(s string) (SkinGoal, bool) {
	goal := SkinGoal(strings.ToUpper(strings.TrimSpace(s)))
	for _, g := range AllSkinGoals() {
		if g == goal {
			return g, true
		}
	}
	return GoalBalanced, false
}
