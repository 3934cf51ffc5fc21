// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileDto "orquestra_backend/internals/features/users/profile/dto"
	profileModel "orquestra_backend/internals/features/users/profile/model"
	userModel "orquestra_backend/internals/features/users/user/model"
	helper "orquestra_backend/internals/helpers"
	ossHelper "orquestra_backend/internals/helpers/oss"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

var validate = validator.New()

// GetMe returns the caller's merged user + profile record.
func (ctrl *ProfileController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	member, err := ctrl.loadMember(userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar perfil")
	}
	return helper.JsonOK(c, "Perfil carregado", member)
}

// buildProfileUpdates keeps partial updates partial: only fields present in
// the request make it into the update map, everything else stays as stored.
func buildProfileUpdates(req *profileDto.UpdateProfileRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Instrument != nil {
		updates["instrument"] = *req.Instrument
	}
	if req.Section != nil {
		updates["section"] = *req.Section
	}
	if req.InstrumentOwnership != nil {
		updates["instrument_ownership"] = *req.InstrumentOwnership
	}
	return updates
}

// UpdateMe updates the caller's profile row, creating it on first save.
func (ctrl *ProfileController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req profileDto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := buildProfileUpdates(&req)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := ctrl.DB.Model(&profileModel.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] failed saving profile:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar perfil")
	}
	if res.RowsAffected == 0 {
		profile := profileModel.Profile{UserID: userID}
		if req.Nickname != nil {
			profile.Nickname = *req.Nickname
		}
		if req.FullName != nil {
			profile.FullName = *req.FullName
		}
		profile.BirthDate = req.BirthDate
		profile.Phone = req.Phone
		if req.Instrument != nil {
			profile.Instrument = *req.Instrument
		}
		if req.Section != nil {
			profile.Section = *req.Section
		}
		if req.InstrumentOwnership != nil {
			profile.InstrumentOwnership = *req.InstrumentOwnership
		}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			log.Println("[ERROR] failed creating profile:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar perfil")
		}
		return helper.JsonUpdated(c, "Perfil atualizado", profile)
	}

	var profile profileModel.Profile
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return helper.JsonUpdated(c, "Perfil atualizado", nil)
	}
	return helper.JsonUpdated(c, "Perfil atualizado", profile)
}

// UpdatePushToken stores the Expo push token for the caller's device.
func (ctrl *ProfileController) UpdatePushToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req profileDto.PushTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.Model(&profileModel.Profile{}).
		Where("user_id = ?", userID).
		Update("push_token", req.PushToken)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar push token")
	}
	if res.RowsAffected == 0 {
		profile := profileModel.Profile{UserID: userID, PushToken: &req.PushToken}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar push token")
		}
	}
	return helper.JsonUpdated(c, "Push token atualizado", nil)
}

// UploadPhoto converts the uploaded image to webp and stores it.
func (ctrl *ProfileController) UploadPhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo de foto não enviado")
	}

	ossService, err := ossHelper.NewOSSServiceFromEnv("perfil")
	if err != nil {
		log.Println("[ERROR] storage unavailable:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Armazenamento indisponível")
	}
	url, err := ossService.UploadAsWebP(c.Context(), fileHeader, "fotos")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao enviar foto")
	}

	if err := ctrl.DB.Model(&profileModel.Profile{}).
		Where("user_id = ?", userID).
		Update("photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar foto")
	}
	return helper.JsonUpdated(c, "Foto atualizada", fiber.Map{"photo_url": url})
}

// ListMembers is the member directory with search and section filters.
func (ctrl *ProfileController) ListMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Table("users").
		Select(`users.id AS user_id, users.user_name, users.email, users.role,
			profiles.nickname, profiles.full_name, profiles.instrument, profiles.section,
			profiles.is_spalla, profiles.is_section_leader, profiles.instrument_ownership,
			profiles.photo_url, profiles.birth_date, profiles.joined_at`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.deleted_at IS NULL AND users.status = ?", "ativo")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(users.user_name) LIKE ? OR LOWER(profiles.nickname) LIKE ? OR LOWER(profiles.instrument) LIKE ?",
			like, like, like,
		)
	}
	if section := strings.TrimSpace(c.Query("section")); section != "" {
		query = query.Where("profiles.section = ?", section)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar membros")
	}

	var members []profileDto.MemberResponse
	if err := query.
		Order("users.user_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Scan(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar membros")
	}

	pagination := helper.BuildPaginationFromPage(paging.Page, paging.PerPage, total)
	return helper.JsonList(c, "Membros carregados", members, &pagination)
}

// UpdateMemberFlags lets staff change role, status and section flags.
func (ctrl *ProfileController) UpdateMemberFlags(c *fiber.Ctx) error {
	targetID := c.Params("id")

	var req profileDto.UpdateMemberFlagsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if req.Role != nil {
			userUpdates["role"] = *req.Role
		}
		if req.Status != nil {
			userUpdates["status"] = *req.Status
		}
		if len(userUpdates) > 0 {
			res := tx.Model(&userModel.User{}).Where("id = ?", targetID).Updates(userUpdates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		profileUpdates := map[string]interface{}{}
		if req.IsSpalla != nil {
			profileUpdates["is_spalla"] = *req.IsSpalla
		}
		if req.IsSectionLeader != nil {
			profileUpdates["is_section_leader"] = *req.IsSectionLeader
		}
		if req.Section != nil {
			profileUpdates["section"] = *req.Section
		}
		if len(profileUpdates) > 0 {
			return tx.Model(&profileModel.Profile{}).
				Where("user_id = ?", targetID).
				Updates(profileUpdates).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar membro")
	}

	member, err := ctrl.loadMember(targetID)
	if err != nil {
		return helper.JsonUpdated(c, "Membro atualizado", nil)
	}
	return helper.JsonUpdated(c, "Membro atualizado", member)
}

// ListSections returns the seeded naipe list for the profile pickers.
func (ctrl *ProfileController) ListSections(c *fiber.Ctx) error {
	var sections []profileModel.Section
	if err := ctrl.DB.Order("name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar naipes")
	}
	return helper.JsonOK(c, "Naipes carregados", sections)
}

func (ctrl *ProfileController) loadMember(userID string) (*profileDto.MemberResponse, error) {
	var member profileDto.MemberResponse
	err := ctrl.DB.Table("users").
		Select(`users.id AS user_id, users.user_name, users.email, users.role,
			profiles.nickname, profiles.full_name, profiles.instrument, profiles.section,
			profiles.is_spalla, profiles.is_section_leader, profiles.instrument_ownership,
			profiles.photo_url, profiles.birth_date, profiles.joined_at`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.id = ? AND users.deleted_at IS NULL", userID).
		Take(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}
