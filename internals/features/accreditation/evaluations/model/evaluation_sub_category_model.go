// file: internals/features/accreditation/evaluations/model/evaluation_sub_category_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationSubCategoryModel struct {
	// ============ PK & Owner ============
	EvaluationSubCategoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_sub_category_id" json:"evaluation_sub_category_id"`
	// Owner category; boleh pindah HANYA ke kategori dalam template yang sama
	EvaluationSubCategoryCategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_sub_category_code_per_category;column:evaluation_sub_category_category_id" json:"evaluation_sub_category_category_id"`

	// ============ Identitas ============
	EvaluationSubCategoryCode        string  `gorm:"type:varchar(24);not null;uniqueIndex:uq_sub_category_code_per_category;column:evaluation_sub_category_code" json:"evaluation_sub_category_code"`
	EvaluationSubCategoryName        string  `gorm:"type:text;not null;column:evaluation_sub_category_name" json:"evaluation_sub_category_name"`
	EvaluationSubCategoryDescription *string `gorm:"type:text;column:evaluation_sub_category_description" json:"evaluation_sub_category_description,omitempty"`

	EvaluationSubCategoryDisplayOrder int `gorm:"type:integer;not null;default:0;column:evaluation_sub_category_display_order" json:"evaluation_sub_category_display_order"`

	// ============ Audit ============
	EvaluationSubCategoryCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_sub_category_created_at" json:"evaluation_sub_category_created_at"`
	EvaluationSubCategoryUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_sub_category_updated_at" json:"evaluation_sub_category_updated_at"`
}

func (EvaluationSubCategoryModel) TableName() string { return "evaluation_sub_categories" }

// ============ Hooks ============
func (m *EvaluationSubCategoryModel) BeforeSave(tx *gorm.DB) error {
	m.EvaluationSubCategoryCode = strings.TrimSpace(m.EvaluationSubCategoryCode)
	m.EvaluationSubCategoryName = strings.TrimSpace(m.EvaluationSubCategoryName)
	if m.EvaluationSubCategoryCode == "" {
		return errors.New("evaluation_sub_category_code wajib diisi")
	}

	if m.EvaluationSubCategoryDescription != nil {
		d := strings.TrimSpace(*m.EvaluationSubCategoryDescription)
		if d == "" {
			m.EvaluationSubCategoryDescription = nil
		} else {
			m.EvaluationSubCategoryDescription = &d
		}
	}
	return nil
}
