package scoring

import (
	"math"
	"testing"

	"ayonne-skin/internal/domain"
)

func TestGoalMultipliersCoverEveryGoalAndCategory(t *testing.T) {
	for _, goal := range domain.AllSkinGoals() {
		t.Run(string(goal), func(t *testing.T) {
			mult := GoalMultipliers(goal)
			if len(mult) != len(domain.AllCategories()) {
				t.Fatalf("expected %d multipliers, got %d", len(domain.AllCategories()), len(mult))
			}
			for _, cat := range domain.AllCategories() {
				m, ok := mult[cat]
				if !ok {
					t.Fatalf("missing multiplier for category %s", cat)
				}
				if m <= 0 {
					t.Fatalf("expected positive multiplier for %s, got %v", cat, m)
				}
			}
		})
	}
}

func TestGoalMultipliersAverageToOne(t *testing.T) {
	// El promedio de cada fila debe ser 1.0 para que la meta no sesgue
	// el puntaje base.
	for _, goal := range domain.AllSkinGoals() {
		t.Run(string(goal), func(t *testing.T) {
			mult := GoalMultipliers(goal)
			var sum float64
			for _, m := range mult {
				sum += m
			}
			avg := sum / float64(len(mult))
			if math.Abs(avg-1.0) > 1e-9 {
				t.Fatalf("expected average multiplier 1.0, got %v", avg)
			}
		})
	}
}

func TestGoalMultipliersEmphasizeTheGoal(t *testing.T) {
	tests := []struct {
		goal     domain.SkinGoal
		category domain.Category
	}{
		{domain.GoalAgeGracefully, domain.CategoryAging},
		{domain.GoalClearBlemishes, domain.CategoryAcne},
		{domain.GoalEvenTone, domain.CategoryPigmentation},
		{domain.GoalHydrate, domain.CategoryHydration},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			mult := GoalMultipliers(tt.goal)
			for cat, m := range mult {
				if cat == tt.category {
					continue
				}
				if mult[tt.category] <= m {
					t.Fatalf("expected %s multiplier (%v) to dominate %s (%v)",
						tt.category, mult[tt.category], cat, m)
				}
			}
		})
	}
}

func TestGoalMultipliersUnknownGoalScoresAsBalanced(t *testing.T) {
	mult := GoalMultipliers(domain.SkinGoal("SOMETHING_NEW"))
	for cat, m := range mult {
		if m != 1.0 {
			t.Fatalf("expected neutral multiplier for %s, got %v", cat, m)
		}
	}
}
