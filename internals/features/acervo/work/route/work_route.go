// file: internals/features/acervo/work/route/work_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	workController "orquestra_backend/internals/features/acervo/work/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// WorkUserRoutes mounts the repertoire browsing endpoints.
func WorkUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := workController.NewWorkController(db)

	works := router.Group("/works")
	works.Get("/", ctrl.List)
	works.Get("/:id", ctrl.GetByID)
}

// WorkAdminRoutes mounts the repertoire management endpoints for staff.
func WorkAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := workController.NewWorkController(db)

	works := router.Group("/works",
		authMiddleware.RequireStaff(constants.RoleErrorStaff("o acervo")))
	works.Post("/", ctrl.Create)
	works.Put("/:id", ctrl.Update)
	works.Post("/:id/audio", ctrl.UploadAudio)
	works.Post("/:id/scores", ctrl.UploadScore)
	works.Delete("/:id", ctrl.Delete)
}
