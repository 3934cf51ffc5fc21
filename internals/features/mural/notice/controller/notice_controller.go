// file: internals/features/mural/notice/controller/notice_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeDto "orquestra_backend/internals/features/mural/notice/dto"
	noticeModel "orquestra_backend/internals/features/mural/notice/model"
	pushService "orquestra_backend/internals/features/notifications/push/service"
	helper "orquestra_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

var validate = validator.New()

// Create posts a notice and notifies every device in the background.
func (ctrl *NoticeController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req noticeDto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}

	notice := noticeModel.Notice{
		Title:     req.Title,
		Body:      req.Body,
		Priority:  req.Priority,
		CreatedBy: userID,
	}
	if err := ctrl.DB.Create(&notice).Error; err != nil {
		log.Println("[ERROR] failed creating notice:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao publicar aviso")
	}

	go func(n noticeModel.Notice) {
		title := "📌 Novo aviso no mural"
		if n.Priority == "alta" {
			title = "🚨 Aviso importante"
		}
		if err := pushService.Broadcast(ctrl.DB, title, n.Title, map[string]string{
			"type":      "notice",
			"notice_id": n.ID.String(),
		}); err != nil {
			log.Println("[ERROR] notice push failed:", err)
		}
	}(notice)

	return helper.JsonCreated(c, "Aviso publicado", notice)
}

func (ctrl *NoticeController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req noticeDto.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := ctrl.DB.Model(&noticeModel.Notice{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar aviso")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aviso não encontrado")
	}
	return helper.JsonUpdated(c, "Aviso atualizado", nil)
}

func (ctrl *NoticeController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&noticeModel.Notice{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir aviso")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aviso não encontrado")
	}
	return helper.JsonDeleted(c, "Aviso excluído", nil)
}

func (ctrl *NoticeController) GetByID(c *fiber.Ctx) error {
	var notice noticeModel.Notice
	if err := ctrl.DB.First(&notice, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aviso não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar aviso")
	}
	return helper.JsonOK(c, "Aviso carregado", notice)
}

// List orders by priority weight first, newest first inside each band.
func (ctrl *NoticeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&noticeModel.Notice{})
	if priority := c.Query("priority"); priority != "" {
		base = base.Where("priority = ?", priority)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar avisos")
	}

	var notices []noticeModel.Notice
	if err := base.
		Order("CASE priority WHEN 'alta' THEN 0 WHEN 'media' THEN 1 ELSE 2 END, created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar avisos")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.PerPage, total)
	return helper.JsonList(c, "Avisos carregados", notices, &pagination)
}
