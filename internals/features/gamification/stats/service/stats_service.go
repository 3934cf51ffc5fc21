// file: internals/features/gamification/stats/service/stats_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	statsModel "orquestra_backend/internals/features/gamification/stats/model"
)

const (
	// XPPerConfirmation is awarded each time a presence flips to confirmado.
	XPPerConfirmation = 25
	XPPerLevel        = 500
	MaxLevel          = 10
)

// BadgeFirstPresence goes out on a member's first ever confirmation. The
// slug must exist in the seeded badge set.
const BadgeFirstPresence = "primeira-presenca"

// LevelForXP converts accumulated XP into a level, capped at MaxLevel.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := xp/XPPerLevel + 1
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// TierForLevel names the level bracket shown on the profile.
func TierForLevel(level int) string {
	switch {
	case level <= 3:
		return "Iniciante"
	case level <= 6:
		return "Intermediário"
	case level <= 9:
		return "Avançado"
	default:
		return "Virtuoso"
	}
}

// AddXP credits points and recomputes the level in one statement. Safe under
// concurrent awards, the increment happens in the database.
func AddXP(db *gorm.DB, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}
	stats := statsModel.UserStats{UserID: userID, XP: amount, Level: LevelForXP(amount)}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"xp":         gorm.Expr("user_stats.xp + ?", amount),
			"level":      gorm.Expr("LEAST((user_stats.xp + ?) / ? + 1, ?)", amount, XPPerLevel, MaxLevel),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&stats).Error
}

// AwardBadge grants a badge once, repeats are no-ops.
func AwardBadge(db *gorm.DB, userID uuid.UUID, slug string) error {
	var badge statsModel.Badge
	if err := db.Where("slug = ?", slug).First(&badge).Error; err != nil {
		return err
	}
	entry := statsModel.UserBadge{UserID: userID, BadgeID: badge.ID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}
