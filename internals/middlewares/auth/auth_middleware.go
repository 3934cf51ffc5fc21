// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"orquestra_backend/internals/configs"
	authModel "orquestra_backend/internals/features/users/auth/model"
	helper "orquestra_backend/internals/helpers"
)

// AuthMiddleware validates the access token, rejects blacklisted tokens and
// loads the identity claims into c.Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não fornecido")
		}

		// Revoked tokens stay rejected until the cleanup job drops them.
		var count int64
		if err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ?", tokenString).
			Count(&count).Error; err != nil {
			log.Println("[ERROR] failed checking token blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao validar sessão")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão encerrada. Faça login novamente")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de assinatura inválido")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().Unix() > int64(exp) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sem identidade")
		}

		c.Locals(helper.LocUserID, userID)
		c.Locals(helper.LocRawToken, tokenString)
		if role, ok := claims["role"].(string); ok {
			c.Locals(helper.LocRole, role)
		}
		if isSpalla, ok := claims["is_spalla"].(bool); ok {
			c.Locals(helper.LocIsSpalla, isSpalla)
		}
		if isLeader, ok := claims["is_section_leader"].(bool); ok {
			c.Locals(helper.LocIsSectionLeader, isLeader)
		}

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
