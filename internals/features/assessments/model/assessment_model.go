// file: internals/features/assessments/model/assessment_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status asesmen (alur satu arah)
const (
	AssessmentStatusDraft       = "draft"
	AssessmentStatusSubmitted   = "submitted"
	AssessmentStatusUnderReview = "under_review"
	AssessmentStatusCompleted   = "completed"
)

// AssessmentModel: satu pengisian instrumen (template) untuk satu jurnal.
// Jawaban disimpan sebagai JSONB: { "<indicator_id>": <jawaban>, ... }.
type AssessmentModel struct {
	AssessmentID         uuid.UUID `gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assessment_id"`
	AssessmentJournalID  uuid.UUID `gorm:"column:assessment_journal_id;type:uuid;not null;index" json:"assessment_journal_id"`
	AssessmentTemplateID uuid.UUID `gorm:"column:assessment_template_id;type:uuid;not null;index" json:"assessment_template_id"`
	AssessmentCampusID   uuid.UUID `gorm:"column:assessment_campus_id;type:uuid;not null;index" json:"assessment_campus_id"`

	AssessmentStatus     string     `gorm:"column:assessment_status;type:varchar(16);not null;default:'draft'" json:"assessment_status"`
	AssessmentReviewerID *uuid.UUID `gorm:"column:assessment_reviewer_id;type:uuid;index" json:"assessment_reviewer_id,omitempty"`

	AssessmentAnswers      datatypes.JSON `gorm:"column:assessment_answers;type:jsonb" json:"assessment_answers,omitempty"`
	AssessmentEssayAnswers datatypes.JSON `gorm:"column:assessment_essay_answers;type:jsonb" json:"assessment_essay_answers,omitempty"`

	AssessmentScore       *float64 `gorm:"column:assessment_score;type:numeric(6,2)" json:"assessment_score,omitempty"`
	AssessmentReviewNotes *string  `gorm:"column:assessment_review_notes;type:text" json:"assessment_review_notes,omitempty"`

	AssessmentSubmittedAt *time.Time `gorm:"column:assessment_submitted_at;type:timestamptz" json:"assessment_submitted_at,omitempty"`
	AssessmentCompletedAt *time.Time `gorm:"column:assessment_completed_at;type:timestamptz" json:"assessment_completed_at,omitempty"`

	AssessmentCreatedAt time.Time      `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
	AssessmentUpdatedAt time.Time      `gorm:"column:assessment_updated_at;autoUpdateTime" json:"assessment_updated_at"`
	AssessmentDeletedAt gorm.DeletedAt `gorm:"column:assessment_deleted_at;index" json:"-"`
}

func (AssessmentModel) TableName() string { return "assessments" }

func isValidAssessmentStatus(s string) bool {
	switch s {
	case AssessmentStatusDraft, AssessmentStatusSubmitted,
		AssessmentStatusUnderReview, AssessmentStatusCompleted:
		return true
	}
	return false
}

func (m *AssessmentModel) BeforeSave(tx *gorm.DB) error {
	if !isValidAssessmentStatus(m.AssessmentStatus) {
		return errors.New("assessment_status tidak dikenal")
	}
	return nil
}
