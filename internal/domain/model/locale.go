package model

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale 対応している表示言語
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
	LocaleFrench  Locale = "fr"
	LocaleGerman  Locale = "de"

	// DefaultLocale 未対応の言語コードが指定された場合のフォールバック先
	DefaultLocale = LocaleEnglish
)

// LocaleLabels 推薦パネルで使う見出しラベル
type LocaleLabels struct {
	NearbyAttractions string `json:"nearby_attractions"`
	CrowdLevel        string `json:"crowd_level"`
	BestTime          string `json:"best_time"`
	Category          string `json:"category"`
	Distance          string `json:"distance"`
}

// SupportedLocales 対応言語の一覧を取得する
func SupportedLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleSpanish, LocaleFrench, LocaleGerman}
}

// ParseLocale 言語コードから対応言語を解決する
// "fr-CA" のような地域付きタグは基本言語で判定し、解析できない・未対応のコードは英語にフォールバックする
func ParseLocale(code string) Locale {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLocale
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()

	switch Locale(base.String()) {
	case LocaleEnglish:
		return LocaleEnglish
	case LocaleSpanish:
		return LocaleSpanish
	case LocaleFrench:
		return LocaleFrench
	case LocaleGerman:
		return LocaleGerman
	default:
		return DefaultLocale
	}
}

// Labels 言語ごとのラベルを取得する。未対応の値には英語のラベルを返す
func (l Locale) Labels() LocaleLabels {
	switch l {
	case LocaleSpanish:
		return LocaleLabels{
			NearbyAttractions: "Atracciones Cercanas",
			CrowdLevel:        "Nivel de Gente",
			BestTime:          "Mejor Hora",
			Category:          "Categoría",
			Distance:          "Distancia",
		}
	case LocaleFrench:
		return LocaleLabels{
			NearbyAttractions: "Attractions à Proximité",
			CrowdLevel:        "Niveau de Foule",
			BestTime:          "Meilleur Moment",
			Category:          "Catégorie",
			Distance:          "Distance",
		}
	case LocaleGerman:
		return LocaleLabels{
			NearbyAttractions: "Attraktionen in der Nähe",
			CrowdLevel:        "Besucherzahl",
			BestTime:          "Beste Zeit",
			Category:          "Kategorie",
			Distance:          "Entfernung",
		}
	default:
		return LocaleLabels{
			NearbyAttractions: "Nearby Attractions",
			CrowdLevel:        "Crowd Level",
			BestTime:          "Best Time",
			Category:          "Category",
			Distance:          "Distance",
		}
	}
}
