package constants

import "testing"

func TestInstrumentMatchesCategory(t *testing.T) {
	tests := []struct {
		instrument string
		category   string
		want       bool
	}{
		{"Violino", CategoryCordas, true},
		{"violino I", CategoryCordas, true},
		{"Violoncelo", CategoryCordas, true},
		{"Flauta", CategorySopros, true},
		{"Clarinete", CategorySopros, true},
		{"Flauta Transversal", CategorySopros, true},
		{"Bateria", CategoryPercussao, true},
		{"Violino", CategorySopros, false},
		{"Flauta", CategoryCordas, false},
		{"", CategoryCordas, false},
		{"Teremim", CategoryPercussao, false},
	}
	for _, tt := range tests {
		if got := InstrumentMatchesCategory(tt.instrument, tt.category); got != tt.want {
			t.Errorf("InstrumentMatchesCategory(%q, %q) = %v, want %v",
				tt.instrument, tt.category, got, tt.want)
		}
	}
}

func TestInstrumentMatchesCategoryUnknownCategory(t *testing.T) {
	if InstrumentMatchesCategory("Violino", "metais") {
		t.Error("unknown category should never match")
	}
}
