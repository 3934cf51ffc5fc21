// file: internals/features/notifications/push/controller/push_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pushService "orquestra_backend/internals/features/notifications/push/service"
	helper "orquestra_backend/internals/helpers"
)

type PushController struct {
	DB *gorm.DB
}

func NewPushController(db *gorm.DB) *PushController {
	return &PushController{DB: db}
}

var validate = validator.New()

type broadcastRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Body  string `json:"body" validate:"required,max=500"`
}

// Broadcast sends a manual notification to every registered device.
func (ctrl *PushController) Broadcast(c *fiber.Ctx) error {
	var req broadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := pushService.Broadcast(ctrl.DB, req.Title, req.Body, map[string]string{"type": "manual"}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao enviar notificação")
	}
	return helper.JsonOK(c, "Notificação enviada", nil)
}
