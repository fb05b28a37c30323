package metrics

import (
	"fmt"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// Validate devolve avisos de qualidade de dados. É apenas informativo: quem chama registra
// os avisos e segue com o processamento.
func Validate(m domain.ExtractedMetrics) []string {
	warnings := make([]string, 0)

	if m.Clicks > m.Impressions {
		warnings = append(warnings, fmt.Sprintf("cliques (%d) maiores que impressões (%d)", m.Clicks, m.Impressions))
	}

	if m.Spend > 0 && m.Impressions == 0 {
		warnings = append(warnings, fmt.Sprintf("gasto de %.2f sem impressões", m.Spend))
	}

	if m.Conversions > 0 && m.ConversionValue == 0 {
		warnings = append(warnings, fmt.Sprintf("%.0f conversões sem valor de conversão", m.Conversions))
	}

	if m.Conversions > 0 && len(m.Actions) == 0 {
		warnings = append(warnings, "conversões informadas sem lista de ações")
	}

	if m.CTR > 100 {
		warnings = append(warnings, fmt.Sprintf("CTR acima de 100%% (%.2f%%)", m.CTR))
	}

	return warnings
}
