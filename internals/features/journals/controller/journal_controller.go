// file: internals/features/journals/controller/journal_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
	"jurnalmu_backend/internals/features/journals/dto"
	"jurnalmu_backend/internals/features/journals/model"
	helper "jurnalmu_backend/internals/helpers"
	helperAuth "jurnalmu_backend/internals/helpers/auth"
)

type JournalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewJournalController(db *gorm.DB, v *validator.Validate) *JournalController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &JournalController{DB: db, Validator: v}
}

// scopeByRole: superadmin & dikti lihat semua; role lain terkunci ke PTM-nya.
func (ctl *JournalController) scopeByRole(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	role := helperAuth.GetUserRole(c)
	if role == constants.RoleSuperAdmin || role == constants.RoleDikti {
		return q, nil
	}
	campusID, err := helperAuth.GetCampusID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Token tidak memuat campus_id")
	}
	return q.Where("journal_campus_id = ?", campusID), nil
}

/* ============================================
   CREATE
   POST /api/u/journals
============================================ */

func (ctl *JournalController) Create(c *fiber.Ctx) error {
	var p dto.JournalCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	// superadmin boleh menunjuk kampus lain; selain itu wajib kampus token
	var campusID uuid.UUID
	role := helperAuth.GetUserRole(c)
	if role == constants.RoleSuperAdmin && p.JournalCampusID != nil {
		campusID = *p.JournalCampusID
	} else {
		id, err := helperAuth.GetCampusID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Token tidak memuat campus_id")
		}
		campusID = id
	}

	ent := p.ToModel(campusID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jurnal")
	}
	return helper.JsonCreated(c, "Berhasil membuat jurnal", dto.JournalFromModel(ent))
}

/* ============================================
   PATCH
   PATCH /api/u/journals/:id
============================================ */

func (ctl *JournalController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.JournalModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var ent model.JournalModel
	if err := q.Where("journal_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.JournalUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jurnal")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui jurnal", dto.JournalFromModel(ent))
}

/* ============================================
   DELETE (soft delete)
   DELETE /api/u/journals/:id
============================================ */

func (ctl *JournalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.JournalModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var ent model.JournalModel
	if err := q.Where("journal_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jurnal")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus jurnal", fiber.Map{"journal_id": id})
}

/* ============================================
   LIST
   GET /api/u/journals/list
============================================ */

func (ctl *JournalController) List(c *fiber.Ctx) error {
	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.JournalModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	if v := c.Query("active"); v == "true" {
		q = q.Where("journal_is_active = TRUE")
	}
	if v := c.Query("sinta_rank"); v != "" {
		q = q.Where("journal_sinta_rank = ?", v)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.JournalModel
	if err := q.Order("journal_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(list)
	return helper.JsonList(c, "OK", dto.JournalsFromModels(list), &pagination)
}

/* ============================================
   DETAIL
   GET /api/u/journals/:id
============================================ */

func (ctl *JournalController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.JournalModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var ent model.JournalModel
	if err := q.Where("journal_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.JournalFromModel(ent))
}
