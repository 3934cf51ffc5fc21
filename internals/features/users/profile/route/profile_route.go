// file: internals/features/users/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	profileController "orquestra_backend/internals/features/users/profile/controller"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// ProfileUserRoutes mounts the authenticated member endpoints.
func ProfileUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := router.Group("/profile")
	profile.Get("/me", ctrl.GetMe)
	profile.Put("/me", ctrl.UpdateMe)
	profile.Patch("/me/push-token", ctrl.UpdatePushToken)
	profile.Post("/me/photo", ctrl.UploadPhoto)

	router.Get("/members", ctrl.ListMembers)
	router.Get("/sections", ctrl.ListSections)
}

// ProfileAdminRoutes mounts the staff-only member management endpoints.
func ProfileAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	router.Patch("/members/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("alterar membros"), constants.AdminOnly...),
		ctrl.UpdateMemberFlags,
	)
}
