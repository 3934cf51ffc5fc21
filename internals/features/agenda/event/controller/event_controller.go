// file: internals/features/agenda/event/controller/event_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "orquestra_backend/internals/features/agenda/attendance/model"
	eventDto "orquestra_backend/internals/features/agenda/event/dto"
	eventModel "orquestra_backend/internals/features/agenda/event/model"
	helper "orquestra_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validate = validator.New()

// buildEventUpdates keeps partial updates partial: only fields present in
// the request end up in the update map. Status changes (cancelado, adiado)
// go through here, the event row and its attendance records stay.
func buildEventUpdates(req *eventDto.UpdateEventRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req eventDto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Status == "" {
		req.Status = "ativo"
	}
	event := eventModel.Event{
		Title:       req.Title,
		Type:        req.Type,
		Status:      req.Status,
		StartsAt:    req.StartsAt,
		Location:    req.Location,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] failed creating event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar evento")
	}
	return helper.JsonCreated(c, "Evento criado com sucesso", event)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req eventDto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := buildEventUpdates(&req)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := ctrl.DB.Model(&eventModel.Event{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar evento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	}

	var event eventModel.Event
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err == nil {
		return helper.JsonUpdated(c, "Evento atualizado", event)
	}
	return helper.JsonUpdated(c, "Evento atualizado", nil)
}

// Delete removes the event and its attendance rows together.
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).
			Delete(&attendanceModel.EventAttendance{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&eventModel.Event{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		log.Println("[ERROR] failed deleting event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir evento")
	}
	return helper.JsonDeleted(c, "Evento excluído", nil)
}

func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	var event eventModel.Event
	if err := ctrl.DB.First(&event, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar evento")
	}
	return helper.JsonOK(c, "Evento carregado", event)
}

// ListUpcoming returns future events with the caller's confirmation status.
func (ctrl *EventController) ListUpcoming(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&eventModel.Event{}).Where("starts_at >= ?", time.Now())
	if eventType := c.Query("type"); eventType != "" {
		base = base.Where("type = ?", eventType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar eventos")
	}

	var rows []eventDto.EventWithMyStatus
	if err := base.
		Select(`events.id, events.title, events.type, events.status, events.starts_at,
			events.location, events.description, event_attendance.status AS my_status`).
		Joins("LEFT JOIN event_attendance ON event_attendance.event_id = events.id AND event_attendance.user_id = ?", userID).
		Order("events.starts_at ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar eventos")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.PerPage, total)
	return helper.JsonList(c, "Próximos eventos", rows, &pagination)
}

// ListPast returns events that already happened, newest first.
func (ctrl *EventController) ListPast(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&eventModel.Event{}).Where("starts_at < ?", time.Now())
	if eventType := c.Query("type"); eventType != "" {
		base = base.Where("type = ?", eventType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar eventos")
	}

	var events []eventModel.Event
	if err := base.
		Order("starts_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar eventos")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.PerPage, total)
	return helper.JsonList(c, "Eventos anteriores", events, &pagination)
}
