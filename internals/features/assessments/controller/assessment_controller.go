// file: internals/features/assessments/controller/assessment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
	evalService "jurnalmu_backend/internals/features/accreditation/evaluations/service"
	templateModel "jurnalmu_backend/internals/features/accreditation/templates/model"
	"jurnalmu_backend/internals/features/assessments/dto"
	"jurnalmu_backend/internals/features/assessments/model"
	"jurnalmu_backend/internals/features/assessments/service"
	journalModel "jurnalmu_backend/internals/features/journals/model"
	helper "jurnalmu_backend/internals/helpers"
	helperAuth "jurnalmu_backend/internals/helpers/auth"
)

type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentController(db *gorm.DB, v *validator.Validate) *AssessmentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AssessmentController{DB: db, Validator: v}
}

func fromServiceError(c *fiber.Ctx, err error) error {
	var de *evalService.DomainError
	if errors.As(err, &de) {
		return helper.JsonErrorCode(c, de.Status, de.Code, de.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}

// scopeByRole: superadmin & dikti lihat semua; reviewer lihat yang ditugaskan
// padanya; role lain terkunci ke PTM-nya.
func (ctl *AssessmentController) scopeByRole(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	role := helperAuth.GetUserRole(c)
	switch role {
	case constants.RoleSuperAdmin, constants.RoleDikti:
		return q, nil
	case constants.RoleReviewer:
		userID, err := helperAuth.GetUserID(c)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return q.Where("assessment_reviewer_id = ?", userID), nil
	default:
		campusID, err := helperAuth.GetCampusID(c)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusForbidden, "Token tidak memuat campus_id")
		}
		return q.Where("assessment_campus_id = ?", campusID), nil
	}
}

/* ============================================
   CREATE (draft)
   POST /api/u/assessments
============================================ */

func (ctl *AssessmentController) Create(c *fiber.Ctx) error {
	var p dto.AssessmentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	campusID, err := helperAuth.GetCampusID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Token tidak memuat campus_id")
	}

	var ent model.AssessmentModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// jurnal harus milik PTM user
		var jr journalModel.JournalModel
		if err := tx.Where("journal_id = ? AND journal_campus_id = ?", p.AssessmentJournalID, campusID).
			First(&jr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jurnal tidak ditemukan di PTM Anda")
			}
			return err
		}

		// template harus aktif
		var tpl templateModel.AccreditationTemplateModel
		if err := tx.Where("accreditation_template_id = ? AND accreditation_template_is_active = TRUE", p.AssessmentTemplateID).
			First(&tpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template aktif tidak ditemukan")
			}
			return err
		}

		ent = model.AssessmentModel{
			AssessmentJournalID:  p.AssessmentJournalID,
			AssessmentTemplateID: p.AssessmentTemplateID,
			AssessmentCampusID:   campusID,
			AssessmentStatus:     model.AssessmentStatusDraft,
		}
		return tx.Create(&ent).Error
	})
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat asesmen (draft)", dto.AssessmentFromModel(ent))
}

/* ============================================
   PATCH jawaban (hanya draft)
   PATCH /api/u/assessments/:id/answers
============================================ */

func (ctl *AssessmentController) PatchAnswers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.AssessmentAnswersDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.AssessmentModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var ent model.AssessmentModel
	if err := q.Where("assessment_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if ent.AssessmentStatus != model.AssessmentStatusDraft {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity,
			"invalid_status_transition", "Jawaban hanya bisa diubah selama status draft")
	}

	updates := map[string]any{}
	if p.AssessmentAnswers != nil {
		updates["assessment_answers"] = *p.AssessmentAnswers
	}
	if p.AssessmentEssayAnswers != nil {
		updates["assessment_essay_answers"] = *p.AssessmentEssayAnswers
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada jawaban yang dikirim")
	}

	if err := ctl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}
	return helper.JsonUpdated(c, "Jawaban tersimpan", fiber.Map{"assessment_id": id})
}

/* ============================================
   SUBMIT (draft -> submitted)
   POST /api/u/assessments/:id/submit
============================================ */

func (ctl *AssessmentController) Submit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// pastikan asesmen terlihat oleh user (scope)
	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.AssessmentModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	var cnt int64
	if err := q.Where("assessment_id = ?", id).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	ent, err := service.Submit(ctl.DB, id)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Asesmen berhasil disubmit", dto.AssessmentFromModel(*ent))
}

/* ============================================
   ASSIGN REVIEWER (superadmin; submitted -> under_review)
   POST /api/a/assessments/:id/assign
============================================ */

func (ctl *AssessmentController) AssignReviewer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.AssessmentAssignDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	ent, err := service.AssignReviewer(ctl.DB, id, p.ReviewerID)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Reviewer berhasil ditunjuk", dto.AssessmentFromModel(*ent))
}

/* ============================================
   COMPLETE (reviewer; under_review -> completed)
   POST /api/u/assessments/:id/complete
============================================ */

func (ctl *AssessmentController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.AssessmentCompleteDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	isSuperAdmin := helperAuth.GetUserRole(c) == constants.RoleSuperAdmin

	ent, err := service.Complete(ctl.DB, id, actorID, isSuperAdmin, p.Score, p.Notes)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Review selesai", dto.AssessmentFromModel(*ent))
}

/* ============================================
   LIST
   GET /api/u/assessments/list
============================================ */

func (ctl *AssessmentController) List(c *fiber.Ctx) error {
	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.AssessmentModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	if v := c.Query("status"); v != "" {
		q = q.Where("assessment_status = ?", v)
	}
	if v := c.Query("journal_id"); v != "" {
		q = q.Where("assessment_journal_id = ?", v)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.AssessmentModel
	if err := q.Order("assessment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(list)
	return helper.JsonList(c, "OK", dto.AssessmentsFromModels(list), &pagination)
}

/* ============================================
   DETAIL
   GET /api/u/assessments/:id
============================================ */

func (ctl *AssessmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q, err := ctl.scopeByRole(c, ctl.DB.Model(&model.AssessmentModel{}))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var ent model.AssessmentModel
	if err := q.Where("assessment_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", dto.AssessmentFromModel(ent))
}
