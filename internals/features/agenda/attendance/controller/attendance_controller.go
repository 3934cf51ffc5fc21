// file: internals/features/agenda/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orquestra_backend/internals/constants"
	attendanceDto "orquestra_backend/internals/features/agenda/attendance/dto"
	attendanceModel "orquestra_backend/internals/features/agenda/attendance/model"
	attendanceService "orquestra_backend/internals/features/agenda/attendance/service"
	eventModel "orquestra_backend/internals/features/agenda/event/model"
	statsService "orquestra_backend/internals/features/gamification/stats/service"
	helper "orquestra_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// attendanceConflict is the shared upsert target: one row per
// (event_id, user_id), repeats overwrite the status.
func attendanceConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
	}
}

// sectionCountsQuery tallies confirmations per section across all events.
// The fallback expression is inlined, not bound: Postgres matches GROUP BY
// entries against the SELECT list syntactically, so both clauses must carry
// the identical text.
func sectionCountsQuery(db *gorm.DB) *gorm.DB {
	sectionExpr := fmt.Sprintf("COALESCE(NULLIF(profiles.section, ''), '%s')", constants.SectionUnassigned)
	return db.Table("event_attendance").
		Select(sectionExpr + ` AS section,
			COUNT(*) FILTER (WHERE event_attendance.status = '` + attendanceModel.StatusConfirmado + `') AS confirmed,
			COUNT(*) AS total`).
		Joins("JOIN events ON events.id = event_attendance.event_id AND events.deleted_at IS NULL").
		Joins("LEFT JOIN profiles ON profiles.user_id = event_attendance.user_id").
		Group(sectionExpr)
}

// GetRoster returns every active member grouped by instrument with the
// resolved status for the event. Members without a record show confirmado.
func (ctrl *AttendanceController) GetRoster(c *fiber.Ctx) error {
	eventID, err := ctrl.resolveEventID(c)
	if err != nil {
		return err
	}

	var members []attendanceService.Member
	if err := ctrl.DB.Table("users").
		Select(`users.id AS user_id, users.user_name AS name, profiles.nickname,
			profiles.instrument, profiles.section, profiles.is_spalla`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.deleted_at IS NULL AND users.status = ?", "ativo").
		Scan(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar lista de chamada")
	}

	var records []attendanceModel.EventAttendance
	if err := ctrl.DB.Where("event_id = ?", eventID).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar lista de chamada")
	}
	recorded := make(map[string]string, len(records))
	for _, r := range records {
		recorded[r.UserID.String()] = r.Status
	}

	roster := attendanceService.BuildRoster(members, recorded)
	groups := attendanceService.GroupByInstrument(roster)
	confirmed, absent := attendanceService.CountStatuses(roster)
	return helper.JsonOK(c, "Lista de chamada carregada", fiber.Map{
		"event_id":  eventID,
		"confirmed": confirmed,
		"absent":    absent,
		"groups":    groups,
	})
}

// SubmitBulk upserts a batch of attendance records: one batched statement
// first, row-by-row when the batch fails so a single bad row does not sink
// the rest. Rows that still fail are reported back by user id.
func (ctrl *AttendanceController) SubmitBulk(c *fiber.Ctx) error {
	eventID, err := ctrl.resolveEventID(c)
	if err != nil {
		return err
	}
	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDto.BulkSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	previous, err := ctrl.loadStatuses(eventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar chamada")
	}

	result := attendanceDto.BulkSubmitResponse{FailedUserIDs: []string{}}

	records := make([]attendanceModel.EventAttendance, 0, len(req.Entries))
	for _, entry := range req.Entries {
		userID, parseErr := uuid.Parse(entry.UserID)
		if parseErr != nil {
			result.FailedUserIDs = append(result.FailedUserIDs, entry.UserID)
			continue
		}
		records = append(records, attendanceModel.EventAttendance{
			EventID:  eventID,
			UserID:   userID,
			Status:   entry.Status,
			MarkedBy: &markedBy,
		})
	}

	var saved []attendanceModel.EventAttendance
	if len(records) > 0 {
		if err := ctrl.DB.Clauses(attendanceConflict()).Create(&records).Error; err == nil {
			saved = records
		} else {
			log.Println("[ERROR] batched attendance upsert failed, retrying row by row:", err)
			for i := range records {
				record := records[i]
				if err := ctrl.DB.Clauses(attendanceConflict()).Create(&record).Error; err != nil {
					log.Printf("[ERROR] attendance upsert failed for user %s: %v", record.UserID, err)
					result.FailedUserIDs = append(result.FailedUserIDs, record.UserID.String())
					continue
				}
				saved = append(saved, record)
			}
		}
	}
	result.Saved = len(saved)

	for _, record := range saved {
		if record.Status == attendanceModel.StatusConfirmado &&
			previous[record.UserID.String()] != attendanceModel.StatusConfirmado {
			ctrl.awardConfirmation(record.UserID)
		}
	}

	if len(result.FailedUserIDs) > 0 {
		return helper.JsonOK(c, "Chamada salva parcialmente", result)
	}
	return helper.JsonOK(c, "Chamada salva com sucesso", result)
}

// ConfirmMe lets a member set their own presence for an event.
func (ctrl *AttendanceController) ConfirmMe(c *fiber.Ctx) error {
	eventID, err := ctrl.resolveEventID(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDto.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing attendanceModel.EventAttendance
	hadConfirmed := false
	if err := ctrl.DB.Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&existing).Error; err == nil {
		hadConfirmed = existing.Status == attendanceModel.StatusConfirmado
	}

	if err := ctrl.upsertRecord(eventID, userID, req.Status, &userID); err != nil {
		log.Println("[ERROR] self confirmation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar presença")
	}

	if req.Status == attendanceModel.StatusConfirmado && !hadConfirmed {
		ctrl.awardConfirmation(userID)
	}

	return helper.JsonUpdated(c, "Presença registrada", fiber.Map{
		"event_id": eventID,
		"status":   req.Status,
	})
}

// GetRanking is the section frequency ranking across all events.
func (ctrl *AttendanceController) GetRanking(c *fiber.Ctx) error {
	top := c.QueryInt("top", attendanceService.DefaultRankingTop)

	var counts []attendanceService.SectionCount
	if err := sectionCountsQuery(ctrl.DB).Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular frequência")
	}

	ranking := attendanceService.ComputeSectionRanking(counts, top)
	return helper.JsonOK(c, "Frequência por naipe", ranking)
}

// GetMyFrequency is the caller's attendance percentage over past events.
func (ctrl *AttendanceController) GetMyFrequency(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var pastEvents int64
	if err := ctrl.DB.Model(&eventModel.Event{}).
		Where("starts_at < ?", time.Now()).
		Count(&pastEvents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular frequência")
	}

	var confirmed int64
	if err := ctrl.DB.Table("event_attendance").
		Joins("JOIN events ON events.id = event_attendance.event_id AND events.deleted_at IS NULL").
		Where("event_attendance.user_id = ? AND event_attendance.status = ? AND events.starts_at < ?",
			userID, attendanceModel.StatusConfirmado, time.Now()).
		Count(&confirmed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular frequência")
	}

	resp := attendanceDto.FrequencyResponse{
		PastEvents: int(pastEvents),
		Confirmed:  int(confirmed),
		Percentage: attendanceService.ComputeFrequency(int(confirmed), int(pastEvents)),
	}
	return helper.JsonOK(c, "Frequência individual", resp)
}

// awardConfirmation credits XP for a transition into confirmado and hands
// out the first-presence badge on the member's first ever confirmation.
func (ctrl *AttendanceController) awardConfirmation(userID uuid.UUID) {
	if err := statsService.AddXP(ctrl.DB, userID, statsService.XPPerConfirmation); err != nil {
		log.Printf("[ERROR] failed awarding xp to %s: %v", userID, err)
	}

	var confirmations int64
	if err := ctrl.DB.Model(&attendanceModel.EventAttendance{}).
		Where("user_id = ? AND status = ?", userID, attendanceModel.StatusConfirmado).
		Count(&confirmations).Error; err != nil {
		log.Printf("[ERROR] failed counting confirmations for %s: %v", userID, err)
		return
	}
	if confirmations == 1 {
		if err := statsService.AwardBadge(ctrl.DB, userID, statsService.BadgeFirstPresence); err != nil {
			log.Printf("[ERROR] failed awarding first-presence badge to %s: %v", userID, err)
		}
	}
}

func (ctrl *AttendanceController) resolveEventID(c *fiber.Ctx) (uuid.UUID, error) {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "ID de evento inválido")
	}
	var event eventModel.Event
	if err := ctrl.DB.Select("id").First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return uuid.Nil, helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar evento")
	}
	return eventID, nil
}

func (ctrl *AttendanceController) loadStatuses(eventID uuid.UUID) (map[string]string, error) {
	var records []attendanceModel.EventAttendance
	if err := ctrl.DB.Where("event_id = ?", eventID).Find(&records).Error; err != nil {
		return nil, err
	}
	statuses := make(map[string]string, len(records))
	for _, r := range records {
		statuses[r.UserID.String()] = r.Status
	}
	return statuses, nil
}

func (ctrl *AttendanceController) upsertRecord(eventID, userID uuid.UUID, status string, markedBy *uuid.UUID) error {
	record := attendanceModel.EventAttendance{
		EventID:  eventID,
		UserID:   userID,
		Status:   status,
		MarkedBy: markedBy,
	}
	return ctrl.DB.Clauses(attendanceConflict()).Create(&record).Error
}
