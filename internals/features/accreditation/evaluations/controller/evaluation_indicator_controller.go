// file: internals/features/accreditation/evaluations/controller/evaluation_indicator_controller.go
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

type EvaluationIndicatorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationIndicatorController(db *gorm.DB, v *validator.Validate) *EvaluationIndicatorController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EvaluationIndicatorController{DB: db, Validator: v}
}

/* ============================================
   CREATE (superadmin) — selalu hierarkis
   POST /api/a/indicators
============================================ */

func (ctl *EvaluationIndicatorController) Create(c *fiber.Ctx) error {
	var p dto.IndicatorCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}
	p.Normalize()

	var created model.EvaluationIndicatorModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Owner sub-kategori harus ada
		var sub model.EvaluationSubCategoryModel
		if err := tx.Where("evaluation_sub_category_id = ?", p.EvaluationIndicatorSubCategoryID).
			First(&sub).Error; err != nil {
			return err
		}

		sortOrder := 0
		if p.EvaluationIndicatorSortOrder != nil {
			sortOrder = *p.EvaluationIndicatorSortOrder
		} else {
			next, err := service.NextIndicatorOrder(tx, p.EvaluationIndicatorSubCategoryID)
			if err != nil {
				return err
			}
			sortOrder = next
		}

		created = p.ToModel(sortOrder)
		return tx.Create(&created).Error
	})
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat indikator", dto.IndicatorFromModel(created))
}

/* ============================================
   PATCH (superadmin)
   PATCH /api/a/indicators/:id
============================================ */

func (ctl *EvaluationIndicatorController) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.IndicatorUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	var ent model.EvaluationIndicatorModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evaluation_indicator_id = ?", id).First(&ent).Error; err != nil {
			return err
		}
		p.ApplyUpdates(&ent)
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui indikator", dto.IndicatorFromModel(ent))
}

/* ============================================
   MIGRATE legacy → hierarkis (superadmin)
   POST /api/a/indicators/:id/migrate
============================================ */

func (ctl *EvaluationIndicatorController) Migrate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.IndicatorMigrateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	migrated, err := service.MigrateIndicator(ctl.DB, id, p.EvaluationIndicatorSubCategoryID)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil memigrasi indikator legacy", dto.IndicatorFromModel(*migrated))
}

/* ============================================
   TOGGLE ACTIVE (superadmin)
   PATCH /api/a/indicators/:id/toggle-active
============================================ */

func (ctl *EvaluationIndicatorController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.EvaluationIndicatorModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evaluation_indicator_id = ?", id).First(&ent).Error; err != nil {
			return err
		}
		ent.EvaluationIndicatorIsActive = !ent.EvaluationIndicatorIsActive
		return tx.Model(&model.EvaluationIndicatorModel{}).
			Where("evaluation_indicator_id = ?", id).
			Update("evaluation_indicator_is_active", ent.EvaluationIndicatorIsActive).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonUpdated(c, "Berhasil mengubah status aktif indikator", dto.IndicatorFromModel(ent))
}

/* ============================================
   DELETE (superadmin)
   DELETE /api/a/indicators/:id
============================================ */

func (ctl *EvaluationIndicatorController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.EvaluationIndicatorModel
		if err := tx.Where("evaluation_indicator_id = ?", id).First(&ent).Error; err != nil {
			return err
		}
		return tx.Where("evaluation_indicator_id = ?", id).
			Delete(&model.EvaluationIndicatorModel{}).Error
	})
	if txErr != nil {
		return fromServiceError(c, txErr)
	}
	return helper.JsonDeleted(c, "Berhasil menghapus indikator", fiber.Map{"evaluation_indicator_id": id})
}

/* ============================================
   LIST & DETAIL — terbuka untuk semua role terautentikasi
   GET /api/u/indicators/list
   GET /api/u/indicators/:id
============================================ */

func (ctl *EvaluationIndicatorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.EvaluationIndicatorModel{})
	if sub := c.Query("sub_category_id"); sub != "" {
		q = q.Where("evaluation_indicator_sub_category_id = ?", sub)
	}
	if c.Query("legacy") == "true" {
		q = q.Where("evaluation_indicator_sub_category_id IS NULL")
	}
	if c.Query("active") == "true" {
		q = q.Where("evaluation_indicator_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.EvaluationIndicatorModel
	if err := q.Order("evaluation_indicator_sort_order ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(list)
	return helper.JsonList(c, "OK", dto.IndicatorsFromModels(list), &pagination)
}

func (ctl *EvaluationIndicatorController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.EvaluationIndicatorModel
	if err := ctl.DB.Where("evaluation_indicator_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.IndicatorFromModel(ent))
}
