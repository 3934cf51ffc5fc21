// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "orquestra_backend/internals/helpers"
)

// OnlyRoles allows the request through when the token role matches one of
// the listed roles.
func OnlyRoles(errorMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocRole).(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errorMessage)
	}
}

// RequireStaff admits admins, maestros and the spalla.
func RequireStaff(errorMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.IsStaff(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, errorMessage)
	}
}
