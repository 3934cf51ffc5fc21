package constants

import "strings"

// SectionUnassigned groups musicians whose profile carries no section label.
const SectionUnassigned = "Outros"

// DefaultRankingSections is what the frequency ranking reports, all at 0%,
// when no attendance record exists yet. Product placeholder so the home
// screen has something to render; kept configurable on purpose.
var DefaultRankingSections = []string{
	"Violino",
	"Violoncelo",
	"Flauta",
	"Clarinete",
	"Percussão",
}

// Library category labels
const (
	CategoryCordas    = "cordas"
	CategorySopros    = "sopros"
	CategoryPercussao = "percussão"
)

// Instrument keywords per library category. Matching is substring-based on
// lowercased instrument labels, same rules the mobile client applied.
var categoryKeywords = map[string][]string{
	CategoryCordas:    {"violino", "viola", "violoncelo", "cello", "baixo", "contrabaixo"},
	CategorySopros:    {"flauta", "clarinete", "oboé", "fagote", "trompa", "trompete", "trombone", "tuba", "sax"},
	CategoryPercussao: {"tímpano", "caixa", "prato", "bateria", "percussão"},
}

// InstrumentMatchesCategory reports whether an instrument label belongs to a
// library category.
func InstrumentMatchesCategory(instrument, category string) bool {
	keywords, ok := categoryKeywords[strings.ToLower(category)]
	if !ok {
		return false
	}
	inst := strings.ToLower(instrument)
	for _, kw := range keywords {
		if strings.Contains(inst, kw) {
			return true
		}
	}
	return false
}
