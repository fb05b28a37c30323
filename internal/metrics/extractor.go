// Package metrics converte linhas brutas das APIs de anúncios em métricas normalizadas.
package metrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// ConversionActionTypes é a lista de prioridade dos tipos de ação de compra.
// A primeira ocorrência encontrada vence.
var ConversionActionTypes = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"omni_purchase",
	"app_custom_event.fb_mobile_purchase",
}

// VideoViewActionTypes é a lista de prioridade das visualizações de vídeo
var VideoViewActionTypes = []string{
	"video_view",
}

// Extract converte um RawInsight em ExtractedMetrics. Nunca falha: valores ausentes ou
// malformados viram zero.
func Extract(raw domain.RawInsight) domain.ExtractedMetrics {
	spend := ParseFloat(raw.Spend)
	conversions := FindActionValue(raw.Actions, ConversionActionTypes)
	conversionValue := FindActionValue(raw.ActionValues, ConversionActionTypes)

	var roas float64
	if conversionValue > 0 && spend > 0 {
		roas = conversionValue / spend
	}

	var costPerResult float64
	if conversions > 0 {
		costPerResult = spend / conversions
	}

	return domain.ExtractedMetrics{
		Impressions:     ParseInt(raw.Impressions),
		Clicks:          ParseInt(raw.Clicks),
		Spend:           spend,
		Reach:           ParseInt(raw.Reach),
		Frequency:       ParseFloat(raw.Frequency),
		CTR:             ParseFloat(raw.CTR),
		CPC:             ParseFloat(raw.CPC),
		CPM:             ParseFloat(raw.CPM),
		CPP:             ParseFloat(raw.CPP),
		Conversions:     conversions,
		ConversionValue: conversionValue,
		VideoViews:      FindActionValue(raw.Actions, VideoViewActionTypes),
		ROAS:            roas,
		CostPerResult:   costPerResult,
		Actions:         raw.Actions,
		ActionValues:    raw.ActionValues,
	}
}

// FindActionValue percorre a lista de prioridade e devolve o valor da primeira ação
// encontrada, ou zero.
func FindActionValue(actions []domain.Action, priority []string) float64 {
	for _, actionType := range priority {
		for _, action := range actions {
			if action.ActionType == actionType {
				return ParseFloat(action.Value)
			}
		}
	}

	return 0
}

// ParseInt interpreta o valor como inteiro, aceitando o prefixo numérico de strings como
// "12abc" e truncando decimais. Retorna zero quando não há número.
func ParseInt(v domain.FlexNumber) int64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// float64(MaxInt64) arredonda para 2^63, que já não cabe em int64
	f := ParseFloat(v)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// ParseFloat interpreta o valor como float, aceitando o maior prefixo numérico válido.
// Retorna zero para vazio, NaN ou infinito.
func ParseFloat(v domain.FlexNumber) float64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(f)
	}

	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func numericPrefix(s string) string {
	end := 0
	seenDigit, seenDot, seenExp := false, false, false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '-' || c == '+') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			return s[:end]
		}
	}

	return s[:end]
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
