package domain

import "fmt"

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformMeta, PlatformGoogle:
		return Platform(s), nil
	}
	return "", fmt.Errorf("plataforma inválida: %q", s)
}

// InsightLevel é o nível em que os insights são reportados
type InsightLevel string

const (
	InsightLevelCampaign InsightLevel = "campaign"
	InsightLevelAdset    InsightLevel = "adset"
	InsightLevelAd       InsightLevel = "ad"
)

// InsightLevels lista os níveis na ordem em que são sincronizados
var InsightLevels = []InsightLevel{InsightLevelCampaign, InsightLevelAdset, InsightLevelAd}

func ParseInsightLevel(s string) (InsightLevel, error) {
	if s == "" {
		return InsightLevelCampaign, nil
	}

	switch InsightLevel(s) {
	case InsightLevelCampaign, InsightLevelAdset, InsightLevelAd:
		return InsightLevel(s), nil
	}
	return "", fmt.Errorf("nível de insight inválido: %q", s)
}

func (l InsightLevel) IsValid() bool {
	switch l {
	case InsightLevelCampaign, InsightLevelAdset, InsightLevelAd:
		return true
	}
	return false
}
