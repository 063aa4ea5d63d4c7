// file: internals/features/accreditation/evaluations/dto/essay_question_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

// =======================
// Request DTO
// =======================

type EssayCreateDTO struct {
	EssayQuestionCategoryID uuid.UUID `json:"essay_question_category_id" validate:"required"`
	EssayQuestionCode       string    `json:"essay_question_code"        validate:"required,max=24"`
	EssayQuestionQuestion   string    `json:"essay_question_question"    validate:"required,min=5"`
	EssayQuestionGuidance   *string   `json:"essay_question_guidance,omitempty"`
	EssayQuestionMaxWords   int       `json:"essay_question_max_words"   validate:"required,min=1,max=10000"`
	EssayQuestionIsRequired *bool     `json:"essay_question_is_required,omitempty"`
	EssayQuestionIsActive   *bool     `json:"essay_question_is_active,omitempty"`
	EssayQuestionDisplayOrder *int    `json:"essay_question_display_order,omitempty" validate:"omitempty,min=1"`
}

type EssayUpdateDTO struct {
	EssayQuestionCode       *string `json:"essay_question_code,omitempty"      validate:"omitempty,max=24"`
	EssayQuestionQuestion   *string `json:"essay_question_question,omitempty"  validate:"omitempty,min=5"`
	EssayQuestionGuidance   *string `json:"essay_question_guidance,omitempty"`
	EssayQuestionMaxWords   *int    `json:"essay_question_max_words,omitempty" validate:"omitempty,min=1,max=10000"`
	EssayQuestionIsRequired *bool   `json:"essay_question_is_required,omitempty"`
	EssayQuestionIsActive   *bool   `json:"essay_question_is_active,omitempty"`
	EssayQuestionDisplayOrder *int  `json:"essay_question_display_order,omitempty" validate:"omitempty,min=1"`
}

// =======================
// Response DTO
// =======================

type EssayResponseDTO struct {
	EssayQuestionID           uuid.UUID `json:"essay_question_id"`
	EssayQuestionCategoryID   uuid.UUID `json:"essay_question_category_id"`
	EssayQuestionCode         string    `json:"essay_question_code"`
	EssayQuestionQuestion     string    `json:"essay_question_question"`
	EssayQuestionGuidance     *string   `json:"essay_question_guidance,omitempty"`
	EssayQuestionMaxWords     int       `json:"essay_question_max_words"`
	EssayQuestionIsRequired   bool      `json:"essay_question_is_required"`
	EssayQuestionIsActive     bool      `json:"essay_question_is_active"`
	EssayQuestionDisplayOrder int       `json:"essay_question_display_order"`
	EssayQuestionCreatedAt    time.Time `json:"essay_question_created_at"`
	EssayQuestionUpdatedAt    time.Time `json:"essay_question_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *EssayCreateDTO) Normalize() {
	p.EssayQuestionCode = strings.ToUpper(strings.TrimSpace(p.EssayQuestionCode))
	p.EssayQuestionQuestion = strings.TrimSpace(p.EssayQuestionQuestion)
}

func (p *EssayCreateDTO) ToModel(displayOrder int) model.EssayQuestionModel {
	isRequired := true
	if p.EssayQuestionIsRequired != nil {
		isRequired = *p.EssayQuestionIsRequired
	}
	isActive := true
	if p.EssayQuestionIsActive != nil {
		isActive = *p.EssayQuestionIsActive
	}
	return model.EssayQuestionModel{
		EssayQuestionCategoryID:   p.EssayQuestionCategoryID,
		EssayQuestionCode:         p.EssayQuestionCode,
		EssayQuestionQuestion:     p.EssayQuestionQuestion,
		EssayQuestionGuidance:     p.EssayQuestionGuidance,
		EssayQuestionMaxWords:     p.EssayQuestionMaxWords,
		EssayQuestionIsRequired:   isRequired,
		EssayQuestionIsActive:     isActive,
		EssayQuestionDisplayOrder: displayOrder,
	}
}

func (u *EssayUpdateDTO) ApplyUpdates(ent *model.EssayQuestionModel) {
	if u.EssayQuestionCode != nil {
		ent.EssayQuestionCode = strings.ToUpper(strings.TrimSpace(*u.EssayQuestionCode))
	}
	if u.EssayQuestionQuestion != nil {
		ent.EssayQuestionQuestion = strings.TrimSpace(*u.EssayQuestionQuestion)
	}
	if u.EssayQuestionGuidance != nil {
		ent.EssayQuestionGuidance = u.EssayQuestionGuidance
	}
	if u.EssayQuestionMaxWords != nil {
		ent.EssayQuestionMaxWords = *u.EssayQuestionMaxWords
	}
	if u.EssayQuestionIsRequired != nil {
		ent.EssayQuestionIsRequired = *u.EssayQuestionIsRequired
	}
	if u.EssayQuestionIsActive != nil {
		ent.EssayQuestionIsActive = *u.EssayQuestionIsActive
	}
	if u.EssayQuestionDisplayOrder != nil {
		ent.EssayQuestionDisplayOrder = *u.EssayQuestionDisplayOrder
	}
}

func EssayFromModel(ent model.EssayQuestionModel) EssayResponseDTO {
	return EssayResponseDTO{
		EssayQuestionID:           ent.EssayQuestionID,
		EssayQuestionCategoryID:   ent.EssayQuestionCategoryID,
		EssayQuestionCode:         ent.EssayQuestionCode,
		EssayQuestionQuestion:     ent.EssayQuestionQuestion,
		EssayQuestionGuidance:     ent.EssayQuestionGuidance,
		EssayQuestionMaxWords:     ent.EssayQuestionMaxWords,
		EssayQuestionIsRequired:   ent.EssayQuestionIsRequired,
		EssayQuestionIsActive:     ent.EssayQuestionIsActive,
		EssayQuestionDisplayOrder: ent.EssayQuestionDisplayOrder,
		EssayQuestionCreatedAt:    ent.EssayQuestionCreatedAt,
		EssayQuestionUpdatedAt:    ent.EssayQuestionUpdatedAt,
	}
}

func EssaysFromModels(list []model.EssayQuestionModel) []EssayResponseDTO {
	out := make([]EssayResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, EssayFromModel(it))
	}
	return out
}
