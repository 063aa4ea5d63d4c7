// file: internals/features/accreditation/evaluations/dto/evaluation_category_dto.go
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

type CategoryCreateDTO struct {
	EvaluationCategoryTemplateID  uuid.UUID `json:"evaluation_category_template_id" validate:"required"`
	EvaluationCategoryCode        string    `json:"evaluation_category_code"        validate:"required,max=24"`
	EvaluationCategoryName        string    `json:"evaluation_category_name"        validate:"required,min=3"`
	EvaluationCategoryDescription *string   `json:"evaluation_category_description,omitempty"`
	EvaluationCategoryWeight      float64   `json:"evaluation_category_weight"      validate:"gte=0,lte=100"`
	// pointer: kalau tidak dikirim, display_order = max+1 dalam template
	EvaluationCategoryDisplayOrder *int `json:"evaluation_category_display_order,omitempty" validate:"omitempty,min=1"`
}

type CategoryUpdateDTO struct {
	EvaluationCategoryCode        *string  `json:"evaluation_category_code,omitempty"   validate:"omitempty,max=24"`
	EvaluationCategoryName        *string  `json:"evaluation_category_name,omitempty"   validate:"omitempty,min=3"`
	EvaluationCategoryDescription *string  `json:"evaluation_category_description,omitempty"`
	EvaluationCategoryWeight      *float64 `json:"evaluation_category_weight,omitempty" validate:"omitempty,gte=0,lte=100"`
	EvaluationCategoryDisplayOrder *int    `json:"evaluation_category_display_order,omitempty" validate:"omitempty,min=1"`
}

// ReorderDTO dipakai kategori maupun sub-kategori (kontrak sama:
// kiriman harus permutasi persis dari isi scope).
type ReorderDTO struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1,dive,required"`
}

// =======================
// Response DTO
// =======================

type CategoryResponseDTO struct {
	EvaluationCategoryID           uuid.UUID `json:"evaluation_category_id"`
	EvaluationCategoryTemplateID   uuid.UUID `json:"evaluation_category_template_id"`
	EvaluationCategoryCode         string    `json:"evaluation_category_code"`
	EvaluationCategoryName         string    `json:"evaluation_category_name"`
	EvaluationCategoryDescription  *string   `json:"evaluation_category_description,omitempty"`
	EvaluationCategoryWeight       float64   `json:"evaluation_category_weight"`
	EvaluationCategoryDisplayOrder int       `json:"evaluation_category_display_order"`
	EvaluationCategoryCreatedAt    time.Time `json:"evaluation_category_created_at"`
	EvaluationCategoryUpdatedAt    time.Time `json:"evaluation_category_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *CategoryCreateDTO) Normalize() {
	p.EvaluationCategoryCode = strings.ToUpper(strings.TrimSpace(p.EvaluationCategoryCode))
	p.EvaluationCategoryName = strings.TrimSpace(p.EvaluationCategoryName)
}

func (p *CategoryCreateDTO) ToModel(displayOrder int) model.EvaluationCategoryModel {
	return model.EvaluationCategoryModel{
		EvaluationCategoryTemplateID:   p.EvaluationCategoryTemplateID,
		EvaluationCategoryCode:         p.EvaluationCategoryCode,
		EvaluationCategoryName:         p.EvaluationCategoryName,
		EvaluationCategoryDescription:  p.EvaluationCategoryDescription,
		EvaluationCategoryWeight:       p.EvaluationCategoryWeight,
		EvaluationCategoryDisplayOrder: displayOrder,
	}
}

// ApplyUpdates tidak menyentuh template_id: owner immutable setelah create.
func (u *CategoryUpdateDTO) ApplyUpdates(ent *model.EvaluationCategoryModel) {
	if u.EvaluationCategoryCode != nil {
		ent.EvaluationCategoryCode = strings.ToUpper(strings.TrimSpace(*u.EvaluationCategoryCode))
	}
	if u.EvaluationCategoryName != nil {
		ent.EvaluationCategoryName = strings.TrimSpace(*u.EvaluationCategoryName)
	}
	if u.EvaluationCategoryDescription != nil {
		ent.EvaluationCategoryDescription = u.EvaluationCategoryDescription
	}
	if u.EvaluationCategoryWeight != nil {
		ent.EvaluationCategoryWeight = *u.EvaluationCategoryWeight
	}
	if u.EvaluationCategoryDisplayOrder != nil {
		ent.EvaluationCategoryDisplayOrder = *u.EvaluationCategoryDisplayOrder
	}
}

func CategoryFromModel(ent model.EvaluationCategoryModel) CategoryResponseDTO {
	return CategoryResponseDTO{
		EvaluationCategoryID:           ent.EvaluationCategoryID,
		EvaluationCategoryTemplateID:   ent.EvaluationCategoryTemplateID,
		EvaluationCategoryCode:         ent.EvaluationCategoryCode,
		EvaluationCategoryName:         ent.EvaluationCategoryName,
		EvaluationCategoryDescription:  ent.EvaluationCategoryDescription,
		EvaluationCategoryWeight:       ent.EvaluationCategoryWeight,
		EvaluationCategoryDisplayOrder: ent.EvaluationCategoryDisplayOrder,
		EvaluationCategoryCreatedAt:    ent.EvaluationCategoryCreatedAt,
		EvaluationCategoryUpdatedAt:    ent.EvaluationCategoryUpdatedAt,
	}
}

func CategoriesFromModels(list []model.EvaluationCategoryModel) []CategoryResponseDTO {
	out := make([]CategoryResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, CategoryFromModel(it))
	}
	return out
}
