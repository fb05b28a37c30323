// Package gaps detecta dias sem dados sincronizados dentro de uma janela de análise e
// agrupa os dias faltantes em intervalos contínuos.
package gaps

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// DateLayout é o formato ISO-8601 de data usado nas entradas e saídas
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Analyze compara as datas com dados contra a janela fechada [dateFrom, dateTo].
// Datas são normalizadas para 12:00 UTC. O dia de hoje e os dias futuros nunca contam
// como faltantes, mas seguem na contagem de TotalDaysInPeriod.
// Limites inválidos ou dateFrom > dateTo produzem um resultado zerado.
func Analyze(datesWithData []string, dateFrom, dateTo string, today time.Time) domain.GapDetectionResult {
	from, err := ParseDate(dateFrom)
	if err != nil {
		return emptyResult()
	}

	to, err := ParseDate(dateTo)
	if err != nil {
		return emptyResult()
	}

	if from.After(to) {
		return emptyResult()
	}

	present := make(map[string]struct{}, len(datesWithData))
	for _, raw := range datesWithData {
		date, err := ParseDate(raw)
		if err != nil {
			continue
		}
		present[date.Format(DateLayout)] = struct{}{}
	}

	todayNoon := noonUTC(today)

	result := emptyResult()

	var run *domain.DataGap
	var runStart, runEnd time.Time

	closeRun := func() {
		if run == nil {
			return
		}
		run.DateTo = runEnd.Format(DateLayout)
		run.Days = daysBetween(runStart, runEnd) + 1
		result.Gaps = append(result.Gaps, *run)
		run = nil
	}

	for current := from; !current.After(to); current = current.Add(day) {
		key := current.Format(DateLayout)
		result.TotalDaysInPeriod++

		if _, ok := present[key]; ok {
			result.DaysWithData++
			closeRun()
			continue
		}

		if !current.Before(todayNoon) {
			closeRun()
			continue
		}

		result.DaysMissing++

		if run != nil && daysBetween(runEnd, current) == 1 {
			runEnd = current
			continue
		}

		closeRun()
		run = &domain.DataGap{DateFrom: key}
		runStart, runEnd = current, current
	}
	closeRun()

	if result.TotalDaysInPeriod > 0 {
		result.CoveragePercent = int(math.Round(float64(result.DaysWithData) / float64(result.TotalDaysInPeriod) * 100))
	}

	return result
}

// ParseDate aceita "2006-01-02" ou um timestamp RFC3339 e devolve a data às 12:00 UTC
func ParseDate(value string) (time.Time, error) {
	if len(value) > len(DateLayout) {
		if ts, err := time.Parse(time.RFC3339, value); err == nil {
			return noonUTC(ts), nil
		}
		value = value[:len(DateLayout)]
	}

	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("gaps: data inválida %q: %w", value, err)
	}

	return noonUTC(date), nil
}

func noonUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

func emptyResult() domain.GapDetectionResult {
	return domain.GapDetectionResult{Gaps: []domain.DataGap{}}
}
