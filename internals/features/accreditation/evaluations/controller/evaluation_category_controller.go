// file: internals/features/accreditation/evaluations/controller/evaluation_category_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/dto"
	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
	"jurnalmu_backend/internals/features/accreditation/evaluations/service"
	templateModel "jurnalmu_backend/internals/features/accreditation/templates/model"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type EvaluationCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationCategoryController(db *gorm.DB, v *validator.Validate) *EvaluationCategoryController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EvaluationCategoryController{DB: db, Validator: v}
}

/* ============================================
   CREATE (superadmin)
   POST /api/a/categories
============================================ */

func (ctl *EvaluationCategoryController) Create(c *fiber.Ctx) error {
	var p dto.CategoryCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}
	p.Normalize()

	var created model.EvaluationCategoryModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Owner template harus ada
		var tpl templateModel.AccreditationTemplateModel
		if err := tx.Where("accreditation_template_id = ?", p.EvaluationCategoryTemplateID).
			First(&tpl).Error; err != nil {
			return err
		}

		// Kode unik per template
		var cnt int64
		if err := tx.Model(&model.EvaluationCategoryModel{}).
			Where("evaluation_category_template_id = ? AND evaluation_category_code = ?",
				p.EvaluationCategoryTemplateID, p.EvaluationCategoryCode).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return service.NewValidationError("kode kategori '%s' sudah dipakai di template ini", p.EvaluationCategoryCode)
		}

		displayOrder := 0
		if p.EvaluationCategoryDisplayOrder != nil {
			displayOrder = *p.EvaluationCategoryDisplayOrder
		} else {
			next, err := service.NextCategoryOrder(tx, p.EvaluationCategoryTemplateID)
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
	return helper.JsonCreated(c, "Berhasil membuat kategori evaluasi", dto.CategoryFromModel(created))
}

/* ============================================
   PATCH (superadmin)
   PATCH /api/a/categories/:id
============================================ */

func (ctl *EvaluationCategoryController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.CategoryUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	var ent model.EvaluationCategoryModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evaluation_category_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		// Kode unik per template saat berubah
		if p.EvaluationCategoryCode != nil {
			var cnt int64
			if err := tx.Model(&model.EvaluationCategoryModel{}).
				Where("evaluation_category_template_id = ? AND evaluation_category_code = ? AND evaluation_category_id <> ?",
					ent.EvaluationCategoryTemplateID, *p.EvaluationCategoryCode, id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return service.NewValidationError("kode kategori '%s' sudah dipakai di template ini", *p.EvaluationCategoryCode)
			}
		}

		p.ApplyUpdates(&ent)
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kategori evaluasi", dto.CategoryFromModel(ent))
}

/* ============================================
   DELETE (superadmin) — cascade eksplisit
   DELETE /api/a/categories/:id
============================================ */

func (ctl *EvaluationCategoryController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := service.DeleteCategoryCascade(ctl.DB, id); err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kategori evaluasi beserta isinya", fiber.Map{"evaluation_category_id": id})
}

/* ============================================
   REORDER (superadmin)
   POST /api/a/templates/:id/categories/reorder
============================================ */

func (ctl *EvaluationCategoryController) Reorder(c *fiber.Ctx) error {
	templateID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.ReorderDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	if err := service.ReorderCategories(ctl.DB, templateID, p.OrderedIDs); err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil menyusun ulang kategori", fiber.Map{
		"evaluation_category_template_id": templateID,
		"ordered_ids":                     p.OrderedIDs,
	})
}

/* ============================================
   LIST per template (superadmin)
   GET /api/a/templates/:id/categories
============================================ */

func (ctl *EvaluationCategoryController) ListByTemplate(c *fiber.Ctx) error {
	templateID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var tpl templateModel.AccreditationTemplateModel
	if err := ctl.DB.Where("accreditation_template_id = ?", templateID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}

	var list []model.EvaluationCategoryModel
	if err := ctl.DB.Where("evaluation_category_template_id = ?", templateID).
		Order("evaluation_category_display_order ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.CategoriesFromModels(list))
}

/* ============================================
   DETAIL (superadmin)
   GET /api/a/categories/:id
============================================ */

func (ctl *EvaluationCategoryController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.EvaluationCategoryModel
	if err := ctl.DB.Where("evaluation_category_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.CategoryFromModel(ent))
}
