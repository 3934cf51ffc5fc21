// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"orquestra_backend/internals/features/users/auth/dto"
	"orquestra_backend/internals/features/users/auth/service"
	helper "orquestra_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := service.Register(ctrl.DB, c, &req)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conta")
	}
	return helper.JsonCreated(c, "Conta criada com sucesso", resp)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := service.Login(ctrl.DB, c, &req)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao entrar")
	}
	return helper.JsonOK(c, "Login realizado com sucesso", resp)
}

func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := service.GoogleLogin(ctrl.DB, c, req.IDToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao entrar com Google")
	}
	return helper.JsonOK(c, "Login realizado com sucesso", resp)
}

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	refreshToken := helper.GetRefreshTokenFromCookie(c)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token não fornecido")
	}

	accessToken, newRefresh, err := service.RotateRefreshToken(ctrl.DB, c, refreshToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao renovar sessão")
	}
	return helper.JsonOK(c, "Sessão renovada", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": newRefresh,
	})
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if err := service.Logout(ctrl.DB, c); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao encerrar sessão")
	}
	return helper.JsonOK(c, "Sessão encerrada", nil)
}
