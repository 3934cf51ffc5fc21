// file: internals/features/acervo/work/controller/work_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"orquestra_backend/internals/constants"
	workDto "orquestra_backend/internals/features/acervo/work/dto"
	workModel "orquestra_backend/internals/features/acervo/work/model"
	helper "orquestra_backend/internals/helpers"
	ossHelper "orquestra_backend/internals/helpers/oss"
)

type WorkController struct {
	DB *gorm.DB
}

func NewWorkController(db *gorm.DB) *WorkController {
	return &WorkController{DB: db}
}

var validate = validator.New()

func (ctrl *WorkController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req workDto.CreateWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	work := workModel.Work{
		Title:      req.Title,
		Slug:       helper.GenerateSlug(req.Title),
		Composer:   req.Composer,
		ScorePaths: datatypes.JSONMap{},
		CreatedBy:  userID,
	}
	if err := ctrl.DB.Create(&work).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Já existe uma obra com esse título")
		}
		log.Println("[ERROR] failed creating work:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cadastrar obra")
	}
	return helper.JsonCreated(c, "Obra cadastrada", work)
}

func (ctrl *WorkController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req workDto.UpdateWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		updates["slug"] = helper.GenerateSlug(*req.Title)
	}
	if req.Composer != nil {
		updates["composer"] = *req.Composer
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := ctrl.DB.Model(&workModel.Work{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Já existe uma obra com esse título")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar obra")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Obra não encontrada")
	}
	return helper.JsonUpdated(c, "Obra atualizada", nil)
}

// UploadAudio stores the rehearsal audio under audio/<ts>_<slug>.
func (ctrl *WorkController) UploadAudio(c *fiber.Ctx) error {
	work, err := ctrl.loadWork(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo de áudio não enviado")
	}

	ossService, err := ossHelper.NewOSSServiceFromEnv("")
	if err != nil {
		log.Println("[ERROR] storage unavailable:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Armazenamento indisponível")
	}

	key := fmt.Sprintf("audio/%d_%s%s",
		time.Now().Unix(), work.Slug, strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if _, err := ossService.UploadFormFile(c.Context(), key, fileHeader); err != nil {
		return uploadError(c, err, "Erro ao enviar áudio")
	}

	if work.AudioPath != "" && work.AudioPath != key {
		if err := ossService.DeleteObject(c.Context(), work.AudioPath); err != nil {
			log.Println("[ERROR] failed removing old audio:", err)
		}
	}

	if err := ctrl.DB.Model(work).Update("audio_path", key).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar áudio")
	}
	return helper.JsonUpdated(c, "Áudio enviado", fiber.Map{"audio_url": ossService.PublicURL(key)})
}

// UploadScore stores one instrument's score under partituras/<work-slug>/.
func (ctrl *WorkController) UploadScore(c *fiber.Ctx) error {
	work, err := ctrl.loadWork(c)
	if err != nil {
		return err
	}

	instrument := strings.TrimSpace(c.FormValue("instrument"))
	if instrument == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o instrumento da partitura")
	}
	fileHeader, err := c.FormFile("score")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo de partitura não enviado")
	}

	ossService, err := ossHelper.NewOSSServiceFromEnv("")
	if err != nil {
		log.Println("[ERROR] storage unavailable:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Armazenamento indisponível")
	}

	key := fmt.Sprintf("partituras/%s/%s%s",
		work.Slug, helper.GenerateSlug(instrument), strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if _, err := ossService.UploadFormFile(c.Context(), key, fileHeader); err != nil {
		return uploadError(c, err, "Erro ao enviar partitura")
	}

	if work.ScorePaths == nil {
		work.ScorePaths = datatypes.JSONMap{}
	}
	work.ScorePaths[instrument] = key
	if err := ctrl.DB.Model(work).Update("score_paths", work.ScorePaths).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar partitura")
	}
	return helper.JsonUpdated(c, "Partitura enviada", fiber.Map{
		"instrument": instrument,
		"url":        ossService.PublicURL(key),
	})
}

// Delete removes the work row and every stored file.
func (ctrl *WorkController) Delete(c *fiber.Ctx) error {
	work, err := ctrl.loadWork(c)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(work.ScorePaths)+1)
	if work.AudioPath != "" {
		keys = append(keys, work.AudioPath)
	}
	for _, v := range work.ScorePaths {
		if key, ok := v.(string); ok && key != "" {
			keys = append(keys, key)
		}
	}

	if err := ctrl.DB.Delete(work).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir obra")
	}

	if len(keys) > 0 {
		ossService, err := ossHelper.NewOSSServiceFromEnv("")
		if err != nil {
			log.Println("[ERROR] storage unavailable, orphaned keys:", keys)
		} else if err := ossService.DeleteObjects(c.Context(), keys); err != nil {
			log.Println("[ERROR] failed removing work files:", err)
		}
	}
	return helper.JsonDeleted(c, "Obra excluída", nil)
}

func (ctrl *WorkController) GetByID(c *fiber.Ctx) error {
	work, err := ctrl.loadWork(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Obra carregada", ctrl.toResponse(work, c.Query("category")))
}

// List returns the repertoire, scores optionally narrowed to one category
// (cordas, sopros, percussao).
func (ctrl *WorkController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&workModel.Work{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(title) LIKE ? OR LOWER(composer) LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar obras")
	}

	var works []workModel.Work
	if err := base.
		Order("title ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&works).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar obras")
	}

	category := c.Query("category")
	responses := make([]workDto.WorkResponse, 0, len(works))
	for i := range works {
		responses = append(responses, ctrl.toResponse(&works[i], category))
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.PerPage, total)
	return helper.JsonList(c, "Obras carregadas", responses, &pagination)
}

func (ctrl *WorkController) toResponse(work *workModel.Work, category string) workDto.WorkResponse {
	resp := workDto.WorkResponse{
		ID:       work.ID.String(),
		Title:    work.Title,
		Slug:     work.Slug,
		Composer: work.Composer,
		Scores:   []workDto.ScoreEntry{},
	}

	ossService, err := ossHelper.NewOSSServiceFromEnv("")
	if err != nil {
		return resp
	}
	if work.AudioPath != "" {
		resp.AudioURL = ossService.PublicURL(work.AudioPath)
	}

	for instrument, v := range work.ScorePaths {
		key, ok := v.(string)
		if !ok || key == "" {
			continue
		}
		if category != "" && !constants.InstrumentMatchesCategory(instrument, category) {
			continue
		}
		resp.Scores = append(resp.Scores, workDto.ScoreEntry{
			Instrument: instrument,
			URL:        ossService.PublicURL(key),
		})
	}
	sort.Slice(resp.Scores, func(i, j int) bool {
		return resp.Scores[i].Instrument < resp.Scores[j].Instrument
	})
	return resp
}

func (ctrl *WorkController) loadWork(c *fiber.Ctx) (*workModel.Work, error) {
	var work workModel.Work
	if err := ctrl.DB.First(&work, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Obra não encontrada")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar obra")
	}
	return &work, nil
}

func uploadError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] upload failed:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
