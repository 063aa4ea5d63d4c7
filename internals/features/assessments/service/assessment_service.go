// file: internals/features/assessments/service/assessment_service.go
package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	evalService "jurnalmu_backend/internals/features/accreditation/evaluations/service"
	"jurnalmu_backend/internals/features/assessments/model"
)

var (
	// ErrInvalidStatusTransition: alur status satu arah
	// draft -> submitted -> under_review -> completed.
	ErrInvalidStatusTransition = &evalService.DomainError{
		Code:    "invalid_status_transition",
		Message: "Transisi status asesmen tidak valid",
		Status:  fiber.StatusUnprocessableEntity,
	}

	// ErrNotAssignedReviewer: hanya reviewer yang ditunjuk yang boleh
	// menyelesaikan review.
	ErrNotAssignedReviewer = &evalService.DomainError{
		Code:    "not_assigned_reviewer",
		Message: "Anda bukan reviewer yang ditunjuk untuk asesmen ini",
		Status:  fiber.StatusForbidden,
	}
)

// ActiveIndicatorIDs mengumpulkan id indikator aktif (jalur hierarkis)
// milik satu template. Indikator legacy tidak ikut.
func ActiveIndicatorIDs(db *gorm.DB, templateID uuid.UUID) (map[string]struct{}, error) {
	var ids []uuid.UUID
	err := db.Table("evaluation_indicators AS i").
		Joins("JOIN evaluation_sub_categories AS s ON s.evaluation_sub_category_id = i.evaluation_indicator_sub_category_id").
		Joins("JOIN evaluation_categories AS c ON c.evaluation_category_id = s.evaluation_sub_category_category_id").
		Where("c.evaluation_category_template_id = ?", templateID).
		Where("i.evaluation_indicator_is_active = TRUE").
		Pluck("i.evaluation_indicator_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id.String()] = struct{}{}
	}
	return set, nil
}

// FilterAnswers membuang jawaban yang key-nya bukan indikator aktif.
// Jawaban atas indikator yang dinonaktifkan hilang diam-diam saat submit.
func FilterAnswers(raw datatypes.JSON, allowed map[string]struct{}) (datatypes.JSON, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	var answers map[string]any
	if err := sonic.Unmarshal(raw, &answers); err != nil {
		return nil, evalService.NewValidationError("assessment_answers bukan objek JSON yang valid")
	}
	for key := range answers {
		if _, ok := allowed[key]; !ok {
			delete(answers, key)
		}
	}
	out, err := sonic.Marshal(answers)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// Submit memindahkan draft -> submitted dalam satu transaksi,
// sekaligus menyaring jawaban atas indikator non-aktif.
func Submit(db *gorm.DB, assessmentID uuid.UUID) (*model.AssessmentModel, error) {
	var ent model.AssessmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).First(&ent).Error; err != nil {
			return err
		}
		if ent.AssessmentStatus != model.AssessmentStatusDraft {
			return ErrInvalidStatusTransition
		}

		allowed, err := ActiveIndicatorIDs(tx, ent.AssessmentTemplateID)
		if err != nil {
			return err
		}
		filtered, err := FilterAnswers(ent.AssessmentAnswers, allowed)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		ent.AssessmentAnswers = filtered
		ent.AssessmentStatus = model.AssessmentStatusSubmitted
		ent.AssessmentSubmittedAt = &now
		return tx.Model(&model.AssessmentModel{}).
			Where("assessment_id = ?", assessmentID).
			Updates(map[string]any{
				"assessment_answers":      ent.AssessmentAnswers,
				"assessment_status":       ent.AssessmentStatus,
				"assessment_submitted_at": ent.AssessmentSubmittedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// AssignReviewer memindahkan submitted -> under_review dan menunjuk reviewer.
func AssignReviewer(db *gorm.DB, assessmentID, reviewerID uuid.UUID) (*model.AssessmentModel, error) {
	var ent model.AssessmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).First(&ent).Error; err != nil {
			return err
		}
		if ent.AssessmentStatus != model.AssessmentStatusSubmitted {
			return ErrInvalidStatusTransition
		}

		var cnt int64
		if err := tx.Table("users").
			Where("user_id = ? AND user_role = ? AND user_deleted_at IS NULL", reviewerID, "reviewer").
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return evalService.NewValidationError("reviewer %s tidak ditemukan atau bukan role reviewer", reviewerID)
		}

		ent.AssessmentStatus = model.AssessmentStatusUnderReview
		ent.AssessmentReviewerID = &reviewerID
		return tx.Model(&model.AssessmentModel{}).
			Where("assessment_id = ?", assessmentID).
			Updates(map[string]any{
				"assessment_status":      ent.AssessmentStatus,
				"assessment_reviewer_id": reviewerID,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// Complete memindahkan under_review -> completed dengan skor & catatan.
// actorID harus reviewer yang ditunjuk (superadmin dicek di controller).
func Complete(db *gorm.DB, assessmentID, actorID uuid.UUID, actorIsSuperAdmin bool, score float64, notes *string) (*model.AssessmentModel, error) {
	var ent model.AssessmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).First(&ent).Error; err != nil {
			return err
		}
		if ent.AssessmentStatus != model.AssessmentStatusUnderReview {
			return ErrInvalidStatusTransition
		}
		if !actorIsSuperAdmin {
			if ent.AssessmentReviewerID == nil || *ent.AssessmentReviewerID != actorID {
				return ErrNotAssignedReviewer
			}
		}

		now := time.Now().UTC()
		ent.AssessmentStatus = model.AssessmentStatusCompleted
		ent.AssessmentScore = &score
		ent.AssessmentReviewNotes = notes
		ent.AssessmentCompletedAt = &now
		return tx.Model(&model.AssessmentModel{}).
			Where("assessment_id = ?", assessmentID).
			Updates(map[string]any{
				"assessment_status":       ent.AssessmentStatus,
				"assessment_score":        score,
				"assessment_review_notes": notes,
				"assessment_completed_at": ent.AssessmentCompletedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ent, nil
}
