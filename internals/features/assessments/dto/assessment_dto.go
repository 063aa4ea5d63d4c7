// file: internals/features/assessments/dto/assessment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jurnalmu_backend/internals/features/assessments/model"
)

// =======================
// Request DTO
// =======================

type AssessmentCreateDTO struct {
	AssessmentJournalID  uuid.UUID `json:"assessment_journal_id"  validate:"required"`
	AssessmentTemplateID uuid.UUID `json:"assessment_template_id" validate:"required"`
}

// Patch jawaban: hanya sah selama status draft.
type AssessmentAnswersDTO struct {
	AssessmentAnswers      *datatypes.JSON `json:"assessment_answers,omitempty"`
	AssessmentEssayAnswers *datatypes.JSON `json:"assessment_essay_answers,omitempty"`
}

type AssessmentAssignDTO struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
}

type AssessmentCompleteDTO struct {
	Score float64 `json:"score" validate:"required,min=0,max=100"`
	Notes *string `json:"notes,omitempty"`
}

// =======================
// Response DTO
// =======================

type AssessmentResponseDTO struct {
	AssessmentID         uuid.UUID      `json:"assessment_id"`
	AssessmentJournalID  uuid.UUID      `json:"assessment_journal_id"`
	AssessmentTemplateID uuid.UUID      `json:"assessment_template_id"`
	AssessmentCampusID   uuid.UUID      `json:"assessment_campus_id"`
	AssessmentStatus     string         `json:"assessment_status"`
	AssessmentReviewerID *uuid.UUID     `json:"assessment_reviewer_id,omitempty"`
	AssessmentAnswers    datatypes.JSON `json:"assessment_answers,omitempty"`
	AssessmentEssayAnswers datatypes.JSON `json:"assessment_essay_answers,omitempty"`
	AssessmentScore       *float64   `json:"assessment_score,omitempty"`
	AssessmentReviewNotes *string    `json:"assessment_review_notes,omitempty"`
	AssessmentSubmittedAt *time.Time `json:"assessment_submitted_at,omitempty"`
	AssessmentCompletedAt *time.Time `json:"assessment_completed_at,omitempty"`
	AssessmentCreatedAt   time.Time  `json:"assessment_created_at"`
	AssessmentUpdatedAt   time.Time  `json:"assessment_updated_at"`
}

// =======================
// Mapper
// =======================

func AssessmentFromModel(ent model.AssessmentModel) AssessmentResponseDTO {
	return AssessmentResponseDTO{
		AssessmentID:           ent.AssessmentID,
		AssessmentJournalID:    ent.AssessmentJournalID,
		AssessmentTemplateID:   ent.AssessmentTemplateID,
		AssessmentCampusID:     ent.AssessmentCampusID,
		AssessmentStatus:       ent.AssessmentStatus,
		AssessmentReviewerID:   ent.AssessmentReviewerID,
		AssessmentAnswers:      ent.AssessmentAnswers,
		AssessmentEssayAnswers: ent.AssessmentEssayAnswers,
		AssessmentScore:        ent.AssessmentScore,
		AssessmentReviewNotes:  ent.AssessmentReviewNotes,
		AssessmentSubmittedAt:  ent.AssessmentSubmittedAt,
		AssessmentCompletedAt:  ent.AssessmentCompletedAt,
		AssessmentCreatedAt:    ent.AssessmentCreatedAt,
		AssessmentUpdatedAt:    ent.AssessmentUpdatedAt,
	}
}

func AssessmentsFromModels(list []model.AssessmentModel) []AssessmentResponseDTO {
	out := make([]AssessmentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, AssessmentFromModel(it))
	}
	return out
}
