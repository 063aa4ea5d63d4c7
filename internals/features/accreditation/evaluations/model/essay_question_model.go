// file: internals/features/accreditation/evaluations/model/essay_question_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EssayQuestionModel menempel langsung ke kategori (satu level di atas
// indikator): di tree, esai dan sub-kategori adalah sibling.
type EssayQuestionModel struct {
	// ============ PK & Owner ============
	EssayQuestionID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:essay_question_id" json:"essay_question_id"`
	EssayQuestionCategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_essay_code_per_category;column:essay_question_category_id" json:"essay_question_category_id"`

	// ============ Identitas ============
	EssayQuestionCode     string  `gorm:"type:varchar(24);not null;uniqueIndex:uq_essay_code_per_category;column:essay_question_code" json:"essay_question_code"`
	EssayQuestionQuestion string  `gorm:"type:text;not null;column:essay_question_question" json:"essay_question_question"`
	EssayQuestionGuidance *string `gorm:"type:text;column:essay_question_guidance" json:"essay_question_guidance,omitempty"`

	EssayQuestionMaxWords     int  `gorm:"type:integer;not null;default:500;column:essay_question_max_words" json:"essay_question_max_words"`
	EssayQuestionIsRequired   bool `gorm:"not null;default:true;column:essay_question_is_required" json:"essay_question_is_required"`
	EssayQuestionIsActive     bool `gorm:"not null;default:true;column:essay_question_is_active" json:"essay_question_is_active"`
	EssayQuestionDisplayOrder int  `gorm:"type:integer;not null;default:0;column:essay_question_display_order" json:"essay_question_display_order"`

	// ============ Audit ============
	EssayQuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:essay_question_created_at" json:"essay_question_created_at"`
	EssayQuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:essay_question_updated_at" json:"essay_question_updated_at"`
}

func (EssayQuestionModel) TableName() string { return "essay_questions" }

// ============ Hooks ============
func (m *EssayQuestionModel) BeforeSave(tx *gorm.DB) error {
	m.EssayQuestionCode = strings.TrimSpace(m.EssayQuestionCode)
	m.EssayQuestionQuestion = strings.TrimSpace(m.EssayQuestionQuestion)
	if m.EssayQuestionCode == "" {
		return errors.New("essay_question_code wajib diisi")
	}

	// Mirror CHECK: 1–10000 kata
	if m.EssayQuestionMaxWords < 1 || m.EssayQuestionMaxWords > 10000 {
		return errors.New("essay_question_max_words harus di rentang 1–10000")
	}

	if m.EssayQuestionGuidance != nil {
		g := strings.TrimSpace(*m.EssayQuestionGuidance)
		if g == "" {
			m.EssayQuestionGuidance = nil
		} else {
			m.EssayQuestionGuidance = &g
		}
	}
	return nil
}
