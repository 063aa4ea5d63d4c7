// file: internals/features/accreditation/evaluations/dto/evaluation_sub_category_dto.go
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

type SubCategoryCreateDTO struct {
	EvaluationSubCategoryCategoryID  uuid.UUID `json:"evaluation_sub_category_category_id" validate:"required"`
	EvaluationSubCategoryCode        string    `json:"evaluation_sub_category_code"        validate:"required,max=24"`
	EvaluationSubCategoryName        string    `json:"evaluation_sub_category_name"        validate:"required,min=3"`
	EvaluationSubCategoryDescription *string   `json:"evaluation_sub_category_description,omitempty"`
	EvaluationSubCategoryDisplayOrder *int     `json:"evaluation_sub_category_display_order,omitempty" validate:"omitempty,min=1"`
}

type SubCategoryUpdateDTO struct {
	EvaluationSubCategoryCode        *string `json:"evaluation_sub_category_code,omitempty" validate:"omitempty,max=24"`
	EvaluationSubCategoryName        *string `json:"evaluation_sub_category_name,omitempty" validate:"omitempty,min=3"`
	EvaluationSubCategoryDescription *string `json:"evaluation_sub_category_description,omitempty"`
	EvaluationSubCategoryDisplayOrder *int   `json:"evaluation_sub_category_display_order,omitempty" validate:"omitempty,min=1"`
}

// SubCategoryMoveDTO: pindah ke kategori lain (harus satu template).
type SubCategoryMoveDTO struct {
	TargetCategoryID uuid.UUID `json:"target_category_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type SubCategoryResponseDTO struct {
	EvaluationSubCategoryID           uuid.UUID `json:"evaluation_sub_category_id"`
	EvaluationSubCategoryCategoryID   uuid.UUID `json:"evaluation_sub_category_category_id"`
	EvaluationSubCategoryCode         string    `json:"evaluation_sub_category_code"`
	EvaluationSubCategoryName         string    `json:"evaluation_sub_category_name"`
	EvaluationSubCategoryDescription  *string   `json:"evaluation_sub_category_description,omitempty"`
	EvaluationSubCategoryDisplayOrder int       `json:"evaluation_sub_category_display_order"`
	EvaluationSubCategoryCreatedAt    time.Time `json:"evaluation_sub_category_created_at"`
	EvaluationSubCategoryUpdatedAt    time.Time `json:"evaluation_sub_category_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *SubCategoryCreateDTO) Normalize() {
	p.EvaluationSubCategoryCode = strings.ToUpper(strings.TrimSpace(p.EvaluationSubCategoryCode))
	p.EvaluationSubCategoryName = strings.TrimSpace(p.EvaluationSubCategoryName)
}

func (p *SubCategoryCreateDTO) ToModel(displayOrder int) model.EvaluationSubCategoryModel {
	return model.EvaluationSubCategoryModel{
		EvaluationSubCategoryCategoryID:   p.EvaluationSubCategoryCategoryID,
		EvaluationSubCategoryCode:         p.EvaluationSubCategoryCode,
		EvaluationSubCategoryName:         p.EvaluationSubCategoryName,
		EvaluationSubCategoryDescription:  p.EvaluationSubCategoryDescription,
		EvaluationSubCategoryDisplayOrder: displayOrder,
	}
}

// ApplyUpdates tidak menyentuh category_id: perpindahan owner hanya lewat
// endpoint move (dengan validasi satu-template).
func (u *SubCategoryUpdateDTO) ApplyUpdates(ent *model.EvaluationSubCategoryModel) {
	if u.EvaluationSubCategoryCode != nil {
		ent.EvaluationSubCategoryCode = strings.ToUpper(strings.TrimSpace(*u.EvaluationSubCategoryCode))
	}
	if u.EvaluationSubCategoryName != nil {
		ent.EvaluationSubCategoryName = strings.TrimSpace(*u.EvaluationSubCategoryName)
	}
	if u.EvaluationSubCategoryDescription != nil {
		ent.EvaluationSubCategoryDescription = u.EvaluationSubCategoryDescription
	}
	if u.EvaluationSubCategoryDisplayOrder != nil {
		ent.EvaluationSubCategoryDisplayOrder = *u.EvaluationSubCategoryDisplayOrder
	}
}

func SubCategoryFromModel(ent model.EvaluationSubCategoryModel) SubCategoryResponseDTO {
	return SubCategoryResponseDTO{
		EvaluationSubCategoryID:           ent.EvaluationSubCategoryID,
		EvaluationSubCategoryCategoryID:   ent.EvaluationSubCategoryCategoryID,
		EvaluationSubCategoryCode:         ent.EvaluationSubCategoryCode,
		EvaluationSubCategoryName:         ent.EvaluationSubCategoryName,
		EvaluationSubCategoryDescription:  ent.EvaluationSubCategoryDescription,
		EvaluationSubCategoryDisplayOrder: ent.EvaluationSubCategoryDisplayOrder,
		EvaluationSubCategoryCreatedAt:    ent.EvaluationSubCategoryCreatedAt,
		EvaluationSubCategoryUpdatedAt:    ent.EvaluationSubCategoryUpdatedAt,
	}
}

func SubCategoriesFromModels(list []model.EvaluationSubCategoryModel) []SubCategoryResponseDTO {
	out := make([]SubCategoryResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, SubCategoryFromModel(it))
	}
	return out
}
