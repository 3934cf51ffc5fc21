// file: internals/features/notifications/push/route/push_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	pushController "orquestra_backend/internals/features/notifications/push/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// PushAdminRoutes mounts the manual broadcast endpoint for staff.
func PushAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := pushController.NewPushController(db)

	router.Post("/notifications/broadcast",
		authMiddleware.RequireStaff(constants.RoleErrorStaff("notificações")),
		ctrl.Broadcast,
	)
}
