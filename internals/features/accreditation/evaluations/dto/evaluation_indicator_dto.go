// file: internals/features/accreditation/evaluations/dto/evaluation_indicator_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

// =======================
// Request DTO
// =======================

// Create selalu hierarkis: sub_category_id wajib. Baris legacy hanya
// lahir dari data lama, bukan dari endpoint create.
type IndicatorCreateDTO struct {
	EvaluationIndicatorSubCategoryID uuid.UUID `json:"evaluation_indicator_sub_category_id" validate:"required"`
	EvaluationIndicatorCode          string    `json:"evaluation_indicator_code"            validate:"required,max=24"`
	EvaluationIndicatorQuestion      string    `json:"evaluation_indicator_question"        validate:"required,min=5"`
	EvaluationIndicatorDescription   *string   `json:"evaluation_indicator_description,omitempty"`
	EvaluationIndicatorWeight        float64   `json:"evaluation_indicator_weight"          validate:"gte=0,lte=100"`
	EvaluationIndicatorAnswerType    string    `json:"evaluation_indicator_answer_type"     validate:"required,oneof=boolean scale text"`
	EvaluationIndicatorScaleOptions  []string  `json:"evaluation_indicator_scale_options,omitempty" validate:"omitempty,max=10,dive,required"`
	EvaluationIndicatorRequiresAttachment bool `json:"evaluation_indicator_requires_attachment"`
	EvaluationIndicatorSortOrder     *int      `json:"evaluation_indicator_sort_order,omitempty" validate:"omitempty,min=1"`
	EvaluationIndicatorIsActive      *bool     `json:"evaluation_indicator_is_active,omitempty"`
}

type IndicatorUpdateDTO struct {
	EvaluationIndicatorCode        *string   `json:"evaluation_indicator_code,omitempty"        validate:"omitempty,max=24"`
	EvaluationIndicatorQuestion    *string   `json:"evaluation_indicator_question,omitempty"    validate:"omitempty,min=5"`
	EvaluationIndicatorDescription *string   `json:"evaluation_indicator_description,omitempty"`
	EvaluationIndicatorWeight      *float64  `json:"evaluation_indicator_weight,omitempty"      validate:"omitempty,gte=0,lte=100"`
	EvaluationIndicatorAnswerType  *string   `json:"evaluation_indicator_answer_type,omitempty" validate:"omitempty,oneof=boolean scale text"`
	EvaluationIndicatorScaleOptions *[]string `json:"evaluation_indicator_scale_options,omitempty" validate:"omitempty,max=10,dive,required"`
	EvaluationIndicatorRequiresAttachment *bool `json:"evaluation_indicator_requires_attachment,omitempty"`
	EvaluationIndicatorSortOrder   *int      `json:"evaluation_indicator_sort_order,omitempty"  validate:"omitempty,min=1"`
}

// IndicatorMigrateDTO: target sub-kategori untuk migrasi baris legacy.
type IndicatorMigrateDTO struct {
	EvaluationIndicatorSubCategoryID uuid.UUID `json:"evaluation_indicator_sub_category_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type IndicatorResponseDTO struct {
	EvaluationIndicatorID            uuid.UUID  `json:"evaluation_indicator_id"`
	EvaluationIndicatorSubCategoryID *uuid.UUID `json:"evaluation_indicator_sub_category_id,omitempty"`
	EvaluationIndicatorCode          string     `json:"evaluation_indicator_code"`
	EvaluationIndicatorQuestion      string     `json:"evaluation_indicator_question"`
	EvaluationIndicatorDescription   *string    `json:"evaluation_indicator_description,omitempty"`
	EvaluationIndicatorWeight        float64    `json:"evaluation_indicator_weight"`
	EvaluationIndicatorAnswerType    string     `json:"evaluation_indicator_answer_type"`
	EvaluationIndicatorScaleOptions  []string   `json:"evaluation_indicator_scale_options,omitempty"`
	EvaluationIndicatorRequiresAttachment bool  `json:"evaluation_indicator_requires_attachment"`
	EvaluationIndicatorSortOrder     int        `json:"evaluation_indicator_sort_order"`
	EvaluationIndicatorIsActive      bool       `json:"evaluation_indicator_is_active"`
	EvaluationIndicatorIsLegacy      bool       `json:"evaluation_indicator_is_legacy"`
	EvaluationIndicatorLegacyCategory    *string `json:"evaluation_indicator_legacy_category,omitempty"`
	EvaluationIndicatorLegacySubCategory *string `json:"evaluation_indicator_legacy_sub_category,omitempty"`
	EvaluationIndicatorCreatedAt     time.Time  `json:"evaluation_indicator_created_at"`
	EvaluationIndicatorUpdatedAt     time.Time  `json:"evaluation_indicator_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *IndicatorCreateDTO) Normalize() {
	p.EvaluationIndicatorCode = strings.ToUpper(strings.TrimSpace(p.EvaluationIndicatorCode))
	p.EvaluationIndicatorQuestion = strings.TrimSpace(p.EvaluationIndicatorQuestion)
	p.EvaluationIndicatorAnswerType = strings.ToLower(strings.TrimSpace(p.EvaluationIndicatorAnswerType))
}

func (p *IndicatorCreateDTO) ToModel(sortOrder int) model.EvaluationIndicatorModel {
	isActive := true
	if p.EvaluationIndicatorIsActive != nil {
		isActive = *p.EvaluationIndicatorIsActive
	}
	subID := p.EvaluationIndicatorSubCategoryID
	return model.EvaluationIndicatorModel{
		EvaluationIndicatorSubCategoryID:      &subID,
		EvaluationIndicatorCode:               p.EvaluationIndicatorCode,
		EvaluationIndicatorQuestion:           p.EvaluationIndicatorQuestion,
		EvaluationIndicatorDescription:        p.EvaluationIndicatorDescription,
		EvaluationIndicatorWeight:             p.EvaluationIndicatorWeight,
		EvaluationIndicatorAnswerType:         p.EvaluationIndicatorAnswerType,
		EvaluationIndicatorScaleOptions:       pq.StringArray(p.EvaluationIndicatorScaleOptions),
		EvaluationIndicatorRequiresAttachment: p.EvaluationIndicatorRequiresAttachment,
		EvaluationIndicatorSortOrder:          sortOrder,
		EvaluationIndicatorIsActive:           isActive,
	}
}

// ApplyUpdates tidak menyentuh sub_category_id maupun string legacy:
// perpindahan bentuk hanya lewat endpoint migrate.
func (u *IndicatorUpdateDTO) ApplyUpdates(ent *model.EvaluationIndicatorModel) {
	if u.EvaluationIndicatorCode != nil {
		ent.EvaluationIndicatorCode = strings.ToUpper(strings.TrimSpace(*u.EvaluationIndicatorCode))
	}
	if u.EvaluationIndicatorQuestion != nil {
		ent.EvaluationIndicatorQuestion = strings.TrimSpace(*u.EvaluationIndicatorQuestion)
	}
	if u.EvaluationIndicatorDescription != nil {
		ent.EvaluationIndicatorDescription = u.EvaluationIndicatorDescription
	}
	if u.EvaluationIndicatorWeight != nil {
		ent.EvaluationIndicatorWeight = *u.EvaluationIndicatorWeight
	}
	if u.EvaluationIndicatorAnswerType != nil {
		ent.EvaluationIndicatorAnswerType = strings.ToLower(strings.TrimSpace(*u.EvaluationIndicatorAnswerType))
	}
	if u.EvaluationIndicatorScaleOptions != nil {
		ent.EvaluationIndicatorScaleOptions = pq.StringArray(*u.EvaluationIndicatorScaleOptions)
	}
	if u.EvaluationIndicatorRequiresAttachment != nil {
		ent.EvaluationIndicatorRequiresAttachment = *u.EvaluationIndicatorRequiresAttachment
	}
	if u.EvaluationIndicatorSortOrder != nil {
		ent.EvaluationIndicatorSortOrder = *u.EvaluationIndicatorSortOrder
	}
}

func IndicatorFromModel(ent model.EvaluationIndicatorModel) IndicatorResponseDTO {
	return IndicatorResponseDTO{
		EvaluationIndicatorID:                 ent.EvaluationIndicatorID,
		EvaluationIndicatorSubCategoryID:      ent.EvaluationIndicatorSubCategoryID,
		EvaluationIndicatorCode:               ent.EvaluationIndicatorCode,
		EvaluationIndicatorQuestion:           ent.EvaluationIndicatorQuestion,
		EvaluationIndicatorDescription:        ent.EvaluationIndicatorDescription,
		EvaluationIndicatorWeight:             ent.EvaluationIndicatorWeight,
		EvaluationIndicatorAnswerType:         ent.EvaluationIndicatorAnswerType,
		EvaluationIndicatorScaleOptions:       []string(ent.EvaluationIndicatorScaleOptions),
		EvaluationIndicatorRequiresAttachment: ent.EvaluationIndicatorRequiresAttachment,
		EvaluationIndicatorSortOrder:          ent.EvaluationIndicatorSortOrder,
		EvaluationIndicatorIsActive:           ent.EvaluationIndicatorIsActive,
		EvaluationIndicatorIsLegacy:           ent.IsLegacy(),
		EvaluationIndicatorLegacyCategory:     ent.EvaluationIndicatorLegacyCategory,
		EvaluationIndicatorLegacySubCategory:  ent.EvaluationIndicatorLegacySubCategory,
		EvaluationIndicatorCreatedAt:          ent.EvaluationIndicatorCreatedAt,
		EvaluationIndicatorUpdatedAt:          ent.EvaluationIndicatorUpdatedAt,
	}
}

func IndicatorsFromModels(list []model.EvaluationIndicatorModel) []IndicatorResponseDTO {
	out := make([]IndicatorResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, IndicatorFromModel(it))
	}
	return out
}
