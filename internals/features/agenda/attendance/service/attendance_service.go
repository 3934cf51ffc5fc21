// file: internals/features/agenda/attendance/service/attendance_service.go
package service

import (
	"math"
	"sort"

	"orquestra_backend/internals/constants"
	attendanceModel "orquestra_backend/internals/features/agenda/attendance/model"
)

// Member is a roster candidate: every active musician, whether or not an
// attendance record exists yet.
type Member struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Instrument string `json:"instrument"`
	Section    string `json:"section"`
	IsSpalla   bool   `json:"is_spalla"`
}

// RosterEntry is one member with their resolved status for the event.
type RosterEntry struct {
	Member
	Status    string `json:"status"`
	HasRecord bool   `json:"has_record"`
}

// RosterGroup is one instrument block of the roll-call screen.
type RosterGroup struct {
	Instrument string        `json:"instrument"`
	Entries    []RosterEntry `json:"entries"`
}

// BuildRoster merges the member list with stored records. Members without a
// record default to confirmado: roll-call assumes presence and the staff
// marks the absences.
func BuildRoster(members []Member, records map[string]string) []RosterEntry {
	entries := make([]RosterEntry, 0, len(members))
	for _, m := range members {
		entry := RosterEntry{
			Member: m,
			Status: attendanceModel.StatusConfirmado,
		}
		if status, ok := records[m.UserID]; ok {
			entry.Status = status
			entry.HasRecord = true
		}
		entries = append(entries, entry)
	}
	return entries
}

// GroupByInstrument splits the roster into instrument blocks, members without
// an instrument land in the fallback group. Groups come out sorted by name
// with the fallback last, entries sorted by member name.
func GroupByInstrument(entries []RosterEntry) []RosterGroup {
	byInstrument := map[string][]RosterEntry{}
	for _, e := range entries {
		instrument := e.Instrument
		if instrument == "" {
			instrument = constants.SectionUnassigned
		}
		byInstrument[instrument] = append(byInstrument[instrument], e)
	}

	names := make([]string, 0, len(byInstrument))
	for name := range byInstrument {
		if name != constants.SectionUnassigned {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := byInstrument[constants.SectionUnassigned]; ok {
		names = append(names, constants.SectionUnassigned)
	}

	groups := make([]RosterGroup, 0, len(names))
	for _, name := range names {
		group := byInstrument[name]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
		groups = append(groups, RosterGroup{Instrument: name, Entries: group})
	}
	return groups
}

// CountStatuses tallies the totals shown above the roll-call list.
func CountStatuses(entries []RosterEntry) (confirmed, absent int) {
	for _, e := range entries {
		if e.Status == attendanceModel.StatusConfirmado {
			confirmed++
		} else {
			absent++
		}
	}
	return confirmed, absent
}

// Toggle flips confirmado and ausente. Anything unknown resolves to ausente
// so tapping an unmarked member marks the absence.
func Toggle(status string) string {
	if status == attendanceModel.StatusConfirmado {
		return attendanceModel.StatusAusente
	}
	return attendanceModel.StatusConfirmado
}

// SectionCount is the raw attendance tally of one section.
type SectionCount struct {
	Section   string
	Confirmed int
	Total     int
}

// RankingEntry is one row of the section frequency ranking.
type RankingEntry struct {
	Section    string  `json:"section"`
	Percentage float64 `json:"percentage"`
	Confirmed  int     `json:"confirmed"`
	Total      int     `json:"total"`
}

// DefaultRankingTop is how many sections the ranking shows unless asked
// otherwise.
const DefaultRankingTop = 3

// ComputeSectionRanking ranks sections by confirmed share, rounded to whole
// percent. Ties break by section name so the order is stable. With no data at
// all the fixed section list comes back at zero.
func ComputeSectionRanking(counts []SectionCount, top int) []RankingEntry {
	if top <= 0 {
		top = DefaultRankingTop
	}

	entries := make([]RankingEntry, 0, len(counts))
	for _, count := range counts {
		if count.Total == 0 {
			continue
		}
		entries = append(entries, RankingEntry{
			Section:    count.Section,
			Percentage: math.Round(float64(count.Confirmed) / float64(count.Total) * 100),
			Confirmed:  count.Confirmed,
			Total:      count.Total,
		})
	}

	if len(entries) == 0 {
		for _, section := range constants.DefaultRankingSections {
			entries = append(entries, RankingEntry{Section: section})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Section < entries[j].Section
	})

	if len(entries) > top {
		entries = entries[:top]
	}
	return entries
}

// ComputeFrequency is the individual attendance percentage over past events.
// With no past events there is nothing to have missed, so it reads 100.
func ComputeFrequency(confirmed, pastEvents int) float64 {
	if pastEvents <= 0 {
		return 100
	}
	return math.Round(float64(confirmed) / float64(pastEvents) * 100)
}
