// file: internals/features/accreditation/evaluations/controller/evaluation_sub_category_controller.go
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

type EvaluationSubCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationSubCategoryController(db *gorm.DB, v *validator.Validate) *EvaluationSubCategoryController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EvaluationSubCategoryController{DB: db, Validator: v}
}

/* ============================================
   CREATE (superadmin)
   POST /api/a/sub-categories
============================================ */

func (ctl *EvaluationSubCategoryController) Create(c *fiber.Ctx) error {
	var p dto.SubCategoryCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}
	p.Normalize()

	var created model.EvaluationSubCategoryModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Owner category harus ada
		var cat model.EvaluationCategoryModel
		if err := tx.Where("evaluation_category_id = ?", p.EvaluationSubCategoryCategoryID).
			First(&cat).Error; err != nil {
			return err
		}

		// Kode unik per kategori
		var cnt int64
		if err := tx.Model(&model.EvaluationSubCategoryModel{}).
			Where("evaluation_sub_category_category_id = ? AND evaluation_sub_category_code = ?",
				p.EvaluationSubCategoryCategoryID, p.EvaluationSubCategoryCode).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return service.NewValidationError("kode sub-kategori '%s' sudah dipakai di kategori ini", p.EvaluationSubCategoryCode)
		}

		displayOrder := 0
		if p.EvaluationSubCategoryDisplayOrder != nil {
			displayOrder = *p.EvaluationSubCategoryDisplayOrder
		} else {
			next, err := service.NextSubCategoryOrder(tx, p.EvaluationSubCategoryCategoryID)
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
	return helper.JsonCreated(c, "Berhasil membuat sub-kategori", dto.SubCategoryFromModel(created))
}

/* ============================================
   PATCH (superadmin)
   PATCH /api/a/sub-categories/:id
============================================ */

func (ctl *EvaluationSubCategoryController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.SubCategoryUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	var ent model.EvaluationSubCategoryModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evaluation_sub_category_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		if p.EvaluationSubCategoryCode != nil {
			var cnt int64
			if err := tx.Model(&model.EvaluationSubCategoryModel{}).
				Where("evaluation_sub_category_category_id = ? AND evaluation_sub_category_code = ? AND evaluation_sub_category_id <> ?",
					ent.EvaluationSubCategoryCategoryID, *p.EvaluationSubCategoryCode, id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return service.NewValidationError("kode sub-kategori '%s' sudah dipakai di kategori ini", *p.EvaluationSubCategoryCode)
			}
		}

		p.ApplyUpdates(&ent)
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui sub-kategori", dto.SubCategoryFromModel(ent))
}

/* ============================================
   MOVE (superadmin) — hanya dalam satu template
   POST /api/a/sub-categories/:id/move
============================================ */

func (ctl *EvaluationSubCategoryController) Move(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.SubCategoryMoveDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	moved, err := service.MoveSubCategory(ctl.DB, id, p.TargetCategoryID)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil memindahkan sub-kategori", dto.SubCategoryFromModel(*moved))
}

/* ============================================
   REORDER (superadmin)
   POST /api/a/categories/:id/sub-categories/reorder
============================================ */

func (ctl *EvaluationSubCategoryController) Reorder(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.ReorderDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	if err := service.ReorderSubCategories(ctl.DB, categoryID, p.OrderedIDs); err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil menyusun ulang sub-kategori", fiber.Map{
		"evaluation_sub_category_category_id": categoryID,
		"ordered_ids":                         p.OrderedIDs,
	})
}

/* ============================================
   DELETE (superadmin) — cascade ke indikator
   DELETE /api/a/sub-categories/:id
============================================ */

func (ctl *EvaluationSubCategoryController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := service.DeleteSubCategoryCascade(ctl.DB, id); err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Berhasil menghapus sub-kategori beserta indikatornya", fiber.Map{"evaluation_sub_category_id": id})
}

/* ============================================
   LIST per kategori (superadmin)
   GET /api/a/categories/:id/sub-categories
============================================ */

func (ctl *EvaluationSubCategoryController) ListByCategory(c *fiber.Ctx) error {
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

	var list []model.EvaluationSubCategoryModel
	if err := ctl.DB.Where("evaluation_sub_category_category_id = ?", categoryID).
		Order("evaluation_sub_category_display_order ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.SubCategoriesFromModels(list))
}
