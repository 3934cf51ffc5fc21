// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "orquestra_backend/internals/features/users/auth/controller"
	"orquestra_backend/internals/middlewares"
	authMiddleware "orquestra_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated logout.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh-token", ctrl.Refresh)

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
