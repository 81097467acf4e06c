package scoring

import (
	"math"
	"time"
)

const (
	consistencyWindowDays = 30
	targetCadenceDays     = 7

	coverageShare = 0.7
	recencyShare  = 0.3
)

// Política de día calendario, única en todo el núcleo: un "día" es la
// fecha UTC del timestamp, truncada a medianoche UTC. Nada acá depende
// de la zona horaria del cliente ni de formatear fechas como strings.
func dayKey(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StreakDays cuenta días calendario consecutivos con al menos un
// análisis, caminando hacia atrás desde hoy. La racha puede empezar en
// ayer (hoy todavía sin análisis no la rompe), pero si el análisis más
// reciente es anterior a ayer la racha es 0. Varios análisis el mismo
// día cuentan una sola vez.
func StreakDays(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(times))
	for _, t := range times {
		days[dayKey(t)] = true
	}

	today := dayKey(now)
	start := today
	if !days[start] {
		start = today.AddDate(0, 0, -1)
		if !days[start] {
			return 0
		}
	}

	streak := 0
	for d := start; days[d]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// ConsistencyScore es un 0-100 de cadencia sobre una ventana móvil de 30
// días contra un objetivo de un análisis cada 7: 70% cobertura de días
// distintos con análisis, 30% recencia del último. Historial escaso o
// viejo puntúa bajo; denso y reciente, alto.
func ConsistencyScore(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	today := dayKey(now)
	windowStart := today.AddDate(0, 0, -(consistencyWindowDays - 1))

	distinct := make(map[time.Time]bool)
	var last time.Time
	for _, t := range times {
		d := dayKey(t)
		if d.After(last) {
			last = d
		}
		if !d.Before(windowStart) && !d.After(today) {
			distinct[d] = true
		}
	}

	daysSinceLast := today.Sub(last).Hours() / 24
	if daysSinceLast < 0 {
		daysSinceLast = 0
	}

	target := float64(consistencyWindowDays) / float64(targetCadenceDays)
	coverage := math.Min(float64(len(distinct))/target, 1)
	recency := math.Max(0, 1-daysSinceLast/float64(consistencyWindowDays))

	return roundInt(100 * (coverageShare*coverage + recencyShare*recency))
}
