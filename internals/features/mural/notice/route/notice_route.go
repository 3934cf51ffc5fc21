// file: internals/features/mural/notice/route/notice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	noticeController "orquestra_backend/internals/features/mural/notice/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// NoticeUserRoutes mounts the mural reading endpoints.
func NoticeUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := noticeController.NewNoticeController(db)

	notices := router.Group("/notices")
	notices.Get("/", ctrl.List)
	notices.Get("/:id", ctrl.GetByID)
}

// NoticeAdminRoutes mounts the mural management endpoints for staff.
func NoticeAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := noticeController.NewNoticeController(db)

	notices := router.Group("/notices",
		authMiddleware.RequireStaff(constants.RoleErrorStaff("o mural")))
	notices.Post("/", ctrl.Create)
	notices.Put("/:id", ctrl.Update)
	notices.Delete("/:id", ctrl.Delete)
}
