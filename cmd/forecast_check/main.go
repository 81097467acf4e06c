// Chequeo manual del proyector de tendencia: corre escenarios
// sintéticos contra el catálogo real y muestra las trayectorias para
// revisar a ojo que los números cuenten una historia creíble antes de
// tocar pesos o tasas del catálogo.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
	"ayonne-skin/internal/scoring"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

type Scenario struct {
	Name         string
	Goal         domain.SkinGoal
	AnalysisDays []int // días hacia atrás de cada análisis, el cero es hoy
	Conditions   []namedConfidence
}

type namedConfidence struct {
	Name       string
	Confidence float64
}

func main() {
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("catalog %s, %d conditions\n\n", cat.Version(), cat.Len())

	scenarios := []Scenario{
		{
			Name:         "brote de acné, cliente nuevo",
			Goal:         domain.GoalClearBlemishes,
			AnalysisDays: []int{0},
			Conditions:   []namedConfidence{{"Acne", 0.8}, {"Dryness", 0.4}},
		},
		{
			Name:         "rutina sostenida tres semanas",
			Goal:         domain.GoalClearBlemishes,
			AnalysisDays: []int{24, 17, 10, 3, 0},
			Conditions:   []namedConfidence{{"Acne", 0.5}, {"Dryness", 0.2}},
		},
		{
			Name:         "envejecimiento, mejora lenta esperada",
			Goal:         domain.GoalAgeGracefully,
			AnalysisDays: []int{14, 7, 0},
			Conditions:   []namedConfidence{{"Wrinkles", 0.6}, {"Fine Lines", 0.5}},
		},
	}

	now := time.Now().UTC()
	for _, sc := range scenarios {
		fmt.Printf("%s[%s]%s goal=%s\n", colorCyan, sc.Name, colorReset, sc.Goal)

		history := buildHistory(cat, sc, now)
		proj := scoring.Project(scoring.ForecastInput{
			History: history,
			Goal:    sc.Goal,
			Now:     now,
		}, cat)

		fmt.Printf("  now: quality=%d age=%d confidence=%s consistency=%d streak=%d\n",
			proj.CurrentQualityScore, proj.CurrentSkinAge, proj.ConfidenceLevel,
			proj.ConsistencyScore, proj.StreakDays)
		fmt.Printf("  %swith products%s:    30d=%.1f 60d=%.1f 90d=%.1f age90=%.1f\n",
			colorGreen, colorReset,
			proj.WithProducts.QualityScore30, proj.WithProducts.QualityScore60,
			proj.WithProducts.QualityScore90, proj.WithProducts.SkinAge90)
		fmt.Printf("  %swithout products%s: 30d=%.1f 60d=%.1f 90d=%.1f age90=%.1f\n",
			colorYellow, colorReset,
			proj.WithoutProducts.QualityScore30, proj.WithoutProducts.QualityScore60,
			proj.WithoutProducts.QualityScore90, proj.WithoutProducts.SkinAge90)

		for _, cp := range proj.ConditionProjections {
			clear := "no clears in 90d"
			if cp.WithProducts.ClearByDay != nil {
				clear = fmt.Sprintf("clears ~day %d", *cp.WithProducts.ClearByDay)
			}
			fmt.Printf("  - %s: %.2f -> %.2f (%s, %s)\n",
				cp.Name, cp.CurrentConfidence, cp.WithProducts.Projected90,
				cp.WithProducts.ImprovementRate, clear)
		}
		for _, w := range proj.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
		for _, rec := range proj.Recommendations {
			fmt.Printf("  * %s (%.2f): %s\n", rec.Name, rec.Score, rec.Reason)
		}
		fmt.Println()
	}
}

// buildHistory arma un historial ascendente con las mismas condiciones
// en cada registro; alcanza para ejercitar racha, consistencia y
// clasificación de confianza.
func buildHistory(cat *catalog.Catalog, sc Scenario, now time.Time) []domain.AnalysisRecord {
	conds := make([]domain.DetectedCondition, 0, len(sc.Conditions))
	for _, nc := range sc.Conditions {
		entry := cat.Lookup(nc.Name)
		conds = append(conds, domain.DetectedCondition{
			ID:             uuid.NewString(),
			Name:           entry.Name,
			Category:       entry.Category,
			Confidence:     nc.Confidence,
			SeverityWeight: entry.BaseWeight,
		})
	}

	records := make([]domain.AnalysisRecord, 0, len(sc.AnalysisDays))
	for _, daysBack := range sc.AnalysisDays {
		res := scoring.Score(conds, sc.Goal)
		records = append(records, domain.AnalysisRecord{
			ID:           uuid.NewString(),
			CustomerID:   "check-customer",
			CreatedAt:    now.AddDate(0, 0, -daysBack),
			Conditions:   conds,
			QualityScore: int(res.QualityScore + 0.5),
			SkinAge:      int(res.SkinAge + 0.5),
			Status:       domain.AnalysisStatusCompleted,
		})
	}
	return records
}
