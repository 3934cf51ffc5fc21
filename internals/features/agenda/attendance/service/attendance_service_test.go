package service

import (
	"reflect"
	"testing"
)

func TestBuildRosterDefaultsToConfirmado(t *testing.T) {
	members := []Member{
		{UserID: "u1", Name: "Ana", Instrument: "Violino"},
		{UserID: "u2", Name: "Bruno", Instrument: "Flauta"},
		{UserID: "u3", Name: "Clara", Instrument: "Violino"},
	}
	records := map[string]string{
		"u2": "ausente",
	}

	roster := BuildRoster(members, records)
	if len(roster) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(roster))
	}

	byID := map[string]RosterEntry{}
	for _, e := range roster {
		byID[e.UserID] = e
	}

	if byID["u1"].Status != "confirmado" || byID["u1"].HasRecord {
		t.Errorf("u1 without record should default to confirmado, got %+v", byID["u1"])
	}
	if byID["u2"].Status != "ausente" || !byID["u2"].HasRecord {
		t.Errorf("u2 should keep stored ausente, got %+v", byID["u2"])
	}
	if byID["u3"].Status != "confirmado" {
		t.Errorf("u3 without record should default to confirmado, got %+v", byID["u3"])
	}
}

func TestBuildRosterEmptyMembers(t *testing.T) {
	roster := BuildRoster(nil, map[string]string{"ghost": "confirmado"})
	if len(roster) != 0 {
		t.Fatalf("expected empty roster, got %d entries", len(roster))
	}
}

func TestGroupByInstrument(t *testing.T) {
	entries := []RosterEntry{
		{Member: Member{UserID: "u1", Name: "Zeca", Instrument: "Violino"}},
		{Member: Member{UserID: "u2", Name: "Ana", Instrument: "Violino"}},
		{Member: Member{UserID: "u3", Name: "Bia", Instrument: ""}},
		{Member: Member{UserID: "u4", Name: "Caio", Instrument: "Flauta"}},
	}

	groups := GroupByInstrument(entries)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	gotOrder := []string{groups[0].Instrument, groups[1].Instrument, groups[2].Instrument}
	wantOrder := []string{"Flauta", "Violino", "Outros"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("group order = %v, want %v", gotOrder, wantOrder)
	}

	violinos := groups[1].Entries
	if violinos[0].Name != "Ana" || violinos[1].Name != "Zeca" {
		t.Errorf("entries should sort by name, got %s then %s", violinos[0].Name, violinos[1].Name)
	}
}

func TestCountStatuses(t *testing.T) {
	tests := []struct {
		name          string
		entries       []RosterEntry
		wantConfirmed int
		wantAbsent    int
	}{
		{
			name: "mixed roster",
			entries: []RosterEntry{
				{Status: "confirmado"},
				{Status: "ausente"},
				{Status: "confirmado"},
				{Status: "confirmado"},
			},
			wantConfirmed: 3,
			wantAbsent:    1,
		},
		{
			name:          "empty roster",
			entries:       nil,
			wantConfirmed: 0,
			wantAbsent:    0,
		},
		{
			name: "everyone absent",
			entries: []RosterEntry{
				{Status: "ausente"},
				{Status: "ausente"},
			},
			wantConfirmed: 0,
			wantAbsent:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmed, absent := CountStatuses(tt.entries)
			if confirmed != tt.wantConfirmed || absent != tt.wantAbsent {
				t.Errorf("CountStatuses = (%d, %d), want (%d, %d)",
					confirmed, absent, tt.wantConfirmed, tt.wantAbsent)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"confirmado", "ausente"},
		{"ausente", "confirmado"},
		{"", "confirmado"},
		{"qualquer", "confirmado"},
	}
	for _, tt := range tests {
		if got := Toggle(tt.in); got != tt.want {
			t.Errorf("Toggle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComputeSectionRanking(t *testing.T) {
	counts := []SectionCount{
		{Section: "Violino", Confirmed: 9, Total: 10},
		{Section: "Flauta", Confirmed: 3, Total: 4},
		{Section: "Clarinete", Confirmed: 1, Total: 3},
		{Section: "Percussão", Confirmed: 2, Total: 2},
	}

	ranking := ComputeSectionRanking(counts, 3)
	if len(ranking) != 3 {
		t.Fatalf("expected top 3, got %d", len(ranking))
	}
	if ranking[0].Section != "Percussão" || ranking[0].Percentage != 100 {
		t.Errorf("first = %+v, want Percussão at 100", ranking[0])
	}
	if ranking[1].Section != "Violino" || ranking[1].Percentage != 90 {
		t.Errorf("second = %+v, want Violino at 90", ranking[1])
	}
	if ranking[2].Section != "Flauta" || ranking[2].Percentage != 75 {
		t.Errorf("third = %+v, want Flauta at 75", ranking[2])
	}
}

func TestComputeSectionRankingTieBreaksByName(t *testing.T) {
	counts := []SectionCount{
		{Section: "Violoncelo", Confirmed: 4, Total: 8},
		{Section: "Flauta", Confirmed: 1, Total: 2},
		{Section: "Clarinete", Confirmed: 5, Total: 10},
	}

	ranking := ComputeSectionRanking(counts, 3)
	want := []string{"Clarinete", "Flauta", "Violoncelo"}
	for i, section := range want {
		if ranking[i].Section != section {
			t.Errorf("position %d = %s, want %s", i, ranking[i].Section, section)
		}
		if ranking[i].Percentage != 50 {
			t.Errorf("%s percentage = %v, want 50", section, ranking[i].Percentage)
		}
	}
}

func TestComputeSectionRankingRounding(t *testing.T) {
	counts := []SectionCount{
		{Section: "Violino", Confirmed: 2, Total: 3},
		{Section: "Flauta", Confirmed: 1, Total: 3},
	}
	ranking := ComputeSectionRanking(counts, 2)
	if ranking[0].Percentage != 67 {
		t.Errorf("2/3 should round to 67, got %v", ranking[0].Percentage)
	}
	if ranking[1].Percentage != 33 {
		t.Errorf("1/3 should round to 33, got %v", ranking[1].Percentage)
	}
}

func TestComputeSectionRankingEmptyDataFallback(t *testing.T) {
	ranking := ComputeSectionRanking(nil, 5)
	if len(ranking) != 5 {
		t.Fatalf("expected 5 fallback sections, got %d", len(ranking))
	}
	for _, entry := range ranking {
		if entry.Percentage != 0 || entry.Total != 0 {
			t.Errorf("fallback entry should be zeroed, got %+v", entry)
		}
	}
}

func TestComputeSectionRankingSkipsEmptySections(t *testing.T) {
	counts := []SectionCount{
		{Section: "Violino", Confirmed: 0, Total: 0},
	}
	ranking := ComputeSectionRanking(counts, 3)
	// the only section has no data, so the fixed list takes over
	if len(ranking) != 3 {
		t.Fatalf("expected 3 fallback entries, got %d", len(ranking))
	}
	if ranking[0].Total != 0 {
		t.Errorf("fallback entries should have zero totals, got %+v", ranking[0])
	}
}

func TestComputeSectionRankingDefaultTop(t *testing.T) {
	counts := []SectionCount{
		{Section: "A", Confirmed: 1, Total: 1},
		{Section: "B", Confirmed: 1, Total: 1},
		{Section: "C", Confirmed: 1, Total: 1},
		{Section: "D", Confirmed: 1, Total: 1},
	}
	if got := len(ComputeSectionRanking(counts, 0)); got != DefaultRankingTop {
		t.Errorf("top<=0 should fall back to %d, got %d", DefaultRankingTop, got)
	}
}

func TestComputeFrequency(t *testing.T) {
	tests := []struct {
		name       string
		confirmed  int
		pastEvents int
		want       float64
	}{
		{"no past events reads 100", 0, 0, 100},
		{"negative guard", 3, -1, 100},
		{"perfect attendance", 10, 10, 100},
		{"half", 5, 10, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"never attended", 0, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFrequency(tt.confirmed, tt.pastEvents); got != tt.want {
				t.Errorf("ComputeFrequency(%d, %d) = %v, want %v",
					tt.confirmed, tt.pastEvents, got, tt.want)
			}
		})
	}
}
