// file: internals/features/accreditation/evaluations/controller/essay_question_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/dto"
	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
	"jurnalmu_backend/internals/features/accreditation/evaluations/service"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type EssayQuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEssayQuestionController(db *gorm.DB, v *validator.Validate) *EssayQuestionController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EssayQuestionController{DB: db, Validator: v}
}

/* ============================================
   CREATE (superadmin)
   POST /api/a/essay-questions
============================================ */

func (ctl *EssayQuestionController) Create(c *fiber.Ctx) error {
	var p dto.EssayCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}
	p.Normalize()

	var created model.EssayQuestionModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Owner category harus ada
		var cat model.EvaluationCategoryModel
		if err := tx.Where("evaluation_category_id = ?", p.EssayQuestionCategoryID).
			First(&cat).Error; err != nil {
			return err
		}

		// Kode unik per kategori
		var cnt int64
		if err := tx.Model(&model.EssayQuestionModel{}).
			Where("essay_question_category_id = ? AND essay_question_code = ?",
				p.EssayQuestionCategoryID, p.EssayQuestionCode).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return service.NewValidationError("kode esai '%s' sudah dipakai di kategori ini", p.EssayQuestionCode)
		}

		displayOrder := 0
		if p.EssayQuestionDisplayOrder != nil {
			displayOrder = *p.EssayQuestionDisplayOrder
		} else {
			next, err := service.NextEssayOrder(tx, p.EssayQuestionCategoryID)
			if err != nil {
				return err
			}
			displayOrder = next
		}

		created = p.ToModel(displayOrder)
		return tx.Create(&created).Error
	})
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat pertanyaan esai", dto.EssayFromModel(created))
}

/* ============================================
   PATCH (superadmin)
   PATCH /api/a/essay-questions/:id
============================================ */

func (ctl *EssayQuestionController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.EssayUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	var ent model.EssayQuestionModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("essay_question_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		if p.EssayQuestionCode != nil {
			var cnt int64
			if err := tx.Model(&model.EssayQuestionModel{}).
				Where("essay_question_category_id = ? AND essay_question_code = ? AND essay_question_id <> ?",
					ent.EssayQuestionCategoryID, *p.EssayQuestionCode, id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return service.NewValidationError("kode esai '%s' sudah dipakai di kategori ini", *p.EssayQuestionCode)
			}
		}

		p.ApplyUpdates(&ent)
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui pertanyaan esai", dto.EssayFromModel(ent))
}

/* ============================================
   DELETE (superadmin)
   DELETE /api/a/essay-questions/:id
============================================ */

func (ctl *EssayQuestionController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.EssayQuestionModel
		if err := tx.Where("essay_question_id = ?", id).First(&ent).Error; err != nil {
			return err
		}
		return tx.Where("essay_question_id = ?", id).
			Delete(&model.EssayQuestionModel{}).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonDeleted(c, "Berhasil menghapus pertanyaan esai", fiber.Map{"essay_question_id": id})
}

/* ============================================
   LIST per kategori (superadmin)
   GET /api/a/categories/:id/essay-questions
============================================ */

func (ctl *EssayQuestionController) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var cat model.EvaluationCategoryModel
	if err := ctl.DB.Where("evaluation_category_id = ?", categoryID).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	var list []model.EssayQuestionModel
	if err := ctl.DB.Where("essay_question_category_id = ?", categoryID).
		Order("essay_question_display_order ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.EssaysFromModels(list))
}
