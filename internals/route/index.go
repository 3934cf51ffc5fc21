// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workRoute "orquestra_backend/internals/features/acervo/work/route"
	attendanceRoute "orquestra_backend/internals/features/agenda/attendance/route"
	eventRoute "orquestra_backend/internals/features/agenda/event/route"
	statsRoute "orquestra_backend/internals/features/gamification/stats/route"
	noticeRoute "orquestra_backend/internals/features/mural/notice/route"
	pushRoute "orquestra_backend/internals/features/notifications/push/route"
	authRoute "orquestra_backend/internals/features/users/auth/route"
	profileRoute "orquestra_backend/internals/features/users/profile/route"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under its privilege group:
//
//	/api/public  no token required
//	/api/u       any authenticated member
//	/api/a       authenticated, staff checks per route
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public")
	authRoute.AuthRoutes(public, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	profileRoute.ProfileUserRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	noticeRoute.NoticeUserRoutes(user, db)
	workRoute.WorkUserRoutes(user, db)
	statsRoute.StatsUserRoutes(user, db)

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	profileRoute.ProfileAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	noticeRoute.NoticeAdminRoutes(admin, db)
	workRoute.WorkAdminRoutes(admin, db)
	pushRoute.PushAdminRoutes(admin, db)
}
