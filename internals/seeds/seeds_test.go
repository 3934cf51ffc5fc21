package seeds

import (
	"testing"

	"orquestra_backend/internals/constants"
	statsService "orquestra_backend/internals/features/gamification/stats/service"
)

func TestDefaultSectionsCategoriesMatchKeywords(t *testing.T) {
	for _, section := range defaultSections {
		if !constants.InstrumentMatchesCategory(section.Name, section.Category) {
			t.Errorf("section %q seeded under %q but no keyword matches it",
				section.Name, section.Category)
		}
	}
}

func TestDefaultSectionsCoverRankingFallback(t *testing.T) {
	names := map[string]bool{}
	for _, section := range defaultSections {
		names[section.Name] = true
	}
	for _, section := range constants.DefaultRankingSections {
		if !names[section] {
			t.Errorf("ranking fallback section %q missing from the seeded list", section)
		}
	}
}

func TestDefaultBadgesIncludeFirstPresence(t *testing.T) {
	for _, badge := range defaultBadges {
		if badge.Slug == statsService.BadgeFirstPresence {
			return
		}
	}
	t.Errorf("seeded badges missing slug %q awarded on first confirmation",
		statsService.BadgeFirstPresence)
}
