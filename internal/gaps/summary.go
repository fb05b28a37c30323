package gaps

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	displayLayout = "02/01/2006"
	noGapsMessage = "Nenhuma lacuna de dados encontrada"
)

// Summary descreve as lacunas em uma frase para o dashboard
func Summary(gaps []domain.DataGap) string {
	if len(gaps) == 0 {
		return noGapsMessage
	}

	total := 0
	first, last := gaps[0].DateFrom, gaps[0].DateTo
	for _, gap := range gaps {
		total += gap.Days
		if gap.DateFrom < first {
			first = gap.DateFrom
		}
		if gap.DateTo > last {
			last = gap.DateTo
		}
	}

	if total == 1 {
		return fmt.Sprintf("1 dia sem dados em %s", displayDate(first))
	}

	return fmt.Sprintf("%d dias sem dados entre %s e %s", total, displayDate(first), displayDate(last))
}

// DaysToBackfill retorna quantos dias separam hoje do início da lacuna mais antiga
func DaysToBackfill(gaps []domain.DataGap, today time.Time) int {
	if len(gaps) == 0 {
		return 0
	}

	oldest := gaps[0].DateFrom
	for _, gap := range gaps[1:] {
		if gap.DateFrom < oldest {
			oldest = gap.DateFrom
		}
	}

	start, err := ParseDate(oldest)
	if err != nil {
		return 0
	}

	days := daysBetween(start, noonUTC(today))
	if days < 0 {
		return 0
	}

	return days
}

func displayDate(value string) string {
	date, err := ParseDate(value)
	if err != nil {
		return value
	}
	return date.Format(displayLayout)
}
