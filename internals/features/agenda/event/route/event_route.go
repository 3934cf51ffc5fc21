// file: internals/features/agenda/event/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	eventController "orquestra_backend/internals/features/agenda/event/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// EventUserRoutes mounts the member-facing agenda endpoints.
func EventUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := router.Group("/events")
	events.Get("/upcoming", ctrl.ListUpcoming)
	events.Get("/past", ctrl.ListPast)
	events.Get("/:id", ctrl.GetByID)
}

// EventAdminRoutes mounts the staff agenda management endpoints.
func EventAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := router.Group("/events",
		authMiddleware.RequireStaff(constants.RoleErrorStaff("a agenda")))
	events.Post("/", ctrl.Create)
	events.Put("/:id", ctrl.Update)
	events.Delete("/:id", ctrl.Delete)
}
