// file: internals/features/gamification/stats/route/stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "orquestra_backend/internals/features/gamification/stats/controller"
)

func StatsUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)

	stats := router.Group("/stats")
	stats.Get("/me", ctrl.GetMyStats)
	stats.Get("/leaderboard", ctrl.Leaderboard)
}
