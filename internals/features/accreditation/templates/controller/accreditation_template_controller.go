// file: internals/features/accreditation/templates/controller/accreditation_template_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	evalService "jurnalmu_backend/internals/features/accreditation/evaluations/service"
	"jurnalmu_backend/internals/features/accreditation/templates/dto"
	"jurnalmu_backend/internals/features/accreditation/templates/model"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type AccreditationTemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAccreditationTemplateController(db *gorm.DB, v *validator.Validate) *AccreditationTemplateController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AccreditationTemplateController{DB: db, Validator: v}
}

/* ============================================
   RESP/ERR helpers
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

// bindAndValidate parse body + validasi. Error validator dikembalikan
// mentah; petakan lewat respondBindError supaya jadi 422 field map.
func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return err
		}
	}
	return nil
}

// respondBindError: hasil validator jadi 422 dengan peta field per kunci
// json; error parse jadi 400. Tidak pernah membocorkan pesan mentah.
func respondBindError(c *fiber.Ctx, err error) error {
	if fields, ok := helper.ValidationFieldErrors(err); ok {
		return helper.JsonValidationError(c, fields)
	}
	return helper.JsonFiberError(c, err)
}

// errTemplateNameTaken: sentinel supaya pre-check unik di dalam transaksi
// bisa dipetakan ke field error yang sama dengan pelanggaran uniqueIndex.
var errTemplateNameTaken = errors.New("nama template sudah dipakai")

func jsonTemplateNameTaken(c *fiber.Ctx) error {
	return helper.JsonValidationError(c, map[string][]string{
		"accreditation_template_name": {"Nama template sudah dipakai"},
	})
}

/* ============================================
   CREATE (superadmin)
   POST /api/a/templates
============================================ */

func (ctl *AccreditationTemplateController) Create(c *fiber.Ctx) error {
	var p dto.TemplateCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}
	p.Normalize()

	var ent model.AccreditationTemplateModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Nama template unik global
		var cnt int64
		if err := tx.Model(&model.AccreditationTemplateModel{}).
			Where("accreditation_template_name = ?", p.AccreditationTemplateName).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return errTemplateNameTaken
		}

		ent = p.ToModel()
		return tx.Create(&ent).Error
	})
	if err != nil {
		// Balapan dengan pre-check tetap mendarat di uniqueIndex;
		// keduanya jadi field error yang sama, bukan 500.
		if errors.Is(err, errTemplateNameTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonTemplateNameTaken(c)
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}
	return helper.JsonCreated(c, "Berhasil membuat template akreditasi", dto.FromModel(ent))
}

/* ============================================
   PATCH (superadmin)
   PATCH /api/a/templates/:id
============================================ */

func (ctl *AccreditationTemplateController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.TemplateUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return respondBindError(c, err)
	}

	// Baca + cek unik + tulis dalam satu transaksi, supaya edit
	// bersamaan tidak saling menimpa lewat baca yang basi.
	var ent model.AccreditationTemplateModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("accreditation_template_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		// Nama unik saat berubah
		if p.AccreditationTemplateName != nil {
			var cnt int64
			if err := tx.Model(&model.AccreditationTemplateModel{}).
				Where("accreditation_template_name = ? AND accreditation_template_id <> ?",
					*p.AccreditationTemplateName, id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return errTemplateNameTaken
			}
		}

		p.ApplyUpdates(&ent)
		return tx.Save(&ent).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errTemplateNameTaken), errors.Is(err, gorm.ErrDuplicatedKey):
			return jsonTemplateNameTaken(c)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memperbarui template")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui template akreditasi", dto.FromModel(ent))
}

/* ============================================
   DELETE (superadmin) — proteksi template aktif terakhir
   DELETE /api/a/templates/:id
============================================ */

func (ctl *AccreditationTemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := evalService.DeleteTemplate(ctl.DB, id); err != nil {
		var de *evalService.DomainError
		if errors.As(err, &de) {
			return helper.JsonErrorCode(c, de.Status, de.Code, de.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus template")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus template beserta pohon evaluasinya", fiber.Map{"accreditation_template_id": id})
}

/* ============================================
   LIST (superadmin)
   GET /api/a/templates/list
============================================ */

func (ctl *AccreditationTemplateController) List(c *fiber.Ctx) error {
	var f dto.TemplateFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return httpErr(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return httpErr(c, fiber.StatusUnprocessableEntity, "Query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AccreditationTemplateModel{})
	if f.Type != nil {
		q = q.Where("accreditation_template_type = ?", *f.Type)
	}
	if f.Active != nil {
		q = q.Where("accreditation_template_is_active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.AccreditationTemplateModel
	if err := q.Order("accreditation_template_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(list)
	return helper.JsonList(c, "OK", dto.FromModels(list), &pagination)
}

/* ============================================
   DETAIL (superadmin)
   GET /api/a/templates/:id
============================================ */

func (ctl *AccreditationTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.AccreditationTemplateModel
	if err := ctl.DB.Where("accreditation_template_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}
