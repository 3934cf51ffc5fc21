// file: internals/features/gamification/stats/controller/stats_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsModel "orquestra_backend/internals/features/gamification/stats/model"
	statsService "orquestra_backend/internals/features/gamification/stats/service"
	helper "orquestra_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type badgeRow struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	AwardedAt   string `json:"awarded_at"`
}

// GetMyStats returns XP, level, tier and earned badges for the caller.
func (ctrl *StatsController) GetMyStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var stats statsModel.UserStats
	if err := ctrl.DB.First(&stats, "user_id = ?", userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar progresso")
		}
		stats = statsModel.UserStats{UserID: userID, XP: 0, Level: 1}
	}

	var badges []badgeRow
	if err := ctrl.DB.Table("user_badges").
		Select("badges.slug, badges.name, badges.description, badges.icon, user_badges.awarded_at").
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.awarded_at ASC").
		Scan(&badges).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar conquistas")
	}

	return helper.JsonOK(c, "Progresso carregado", fiber.Map{
		"xp":     stats.XP,
		"level":  stats.Level,
		"tier":   statsService.TierForLevel(stats.Level),
		"badges": badges,
	})
}

type leaderboardRow struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	UserName string `json:"user_name"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

// Leaderboard lists the top members by XP.
func (ctrl *StatsController) Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var rows []leaderboardRow
	if err := ctrl.DB.Table("user_stats").
		Select("user_stats.user_id, user_stats.xp, user_stats.level, users.user_name, profiles.nickname").
		Joins("JOIN users ON users.id = user_stats.user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN profiles ON profiles.user_id = user_stats.user_id").
		Order("user_stats.xp DESC, users.user_name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar ranking de pontos")
	}
	return helper.JsonOK(c, "Ranking de pontos carregado", rows)
}
