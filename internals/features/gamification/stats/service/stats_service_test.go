package service

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{-50, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{4499, 9},
		{4500, 10},
		{99999, 10},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Iniciante"},
		{3, "Iniciante"},
		{4, "Intermediário"},
		{6, "Intermediário"},
		{7, "Avançado"},
		{9, "Avançado"},
		{10, "Virtuoso"},
	}
	for _, tt := range tests {
		if got := TierForLevel(tt.level); got != tt.want {
			t.Errorf("TierForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
