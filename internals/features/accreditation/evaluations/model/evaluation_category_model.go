// file: internals/features/accreditation/evaluations/model/evaluation_category_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationCategoryModel struct {
	// ============ PK & Owner ============
	EvaluationCategoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_category_id" json:"evaluation_category_id"`
	// Owner template (immutable setelah create)
	EvaluationCategoryTemplateID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_category_code_per_template;column:evaluation_category_template_id" json:"evaluation_category_template_id"`

	// ============ Identitas ============
	// Kode unik per template, mis. "A", "B1"
	EvaluationCategoryCode        string  `gorm:"type:varchar(24);not null;uniqueIndex:uq_category_code_per_template;column:evaluation_category_code" json:"evaluation_category_code"`
	EvaluationCategoryName        string  `gorm:"type:text;not null;column:evaluation_category_name" json:"evaluation_category_name"`
	EvaluationCategoryDescription *string `gorm:"type:text;column:evaluation_category_description" json:"evaluation_category_description,omitempty"`

	// Bobot kontribusi ke skor template (0–100); konvensi jumlah per
	// template = 100, diperiksa oleh tooling verifikasi, bukan saat tulis.
	EvaluationCategoryWeight       float64 `gorm:"type:numeric(5,2);not null;default:0;column:evaluation_category_weight" json:"evaluation_category_weight"`
	EvaluationCategoryDisplayOrder int     `gorm:"type:integer;not null;default:0;column:evaluation_category_display_order" json:"evaluation_category_display_order"`

	// ============ Audit ============
	EvaluationCategoryCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_category_created_at" json:"evaluation_category_created_at"`
	EvaluationCategoryUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_category_updated_at" json:"evaluation_category_updated_at"`
}

func (EvaluationCategoryModel) TableName() string { return "evaluation_categories" }

// ============ Hooks ============
func (m *EvaluationCategoryModel) BeforeSave(tx *gorm.DB) error {
	m.EvaluationCategoryCode = strings.TrimSpace(m.EvaluationCategoryCode)
	m.EvaluationCategoryName = strings.TrimSpace(m.EvaluationCategoryName)
	if m.EvaluationCategoryCode == "" {
		return errors.New("evaluation_category_code wajib diisi")
	}

	// Mirror CHECK: bobot 0–100
	if m.EvaluationCategoryWeight < 0 || m.EvaluationCategoryWeight > 100 {
		return errors.New("evaluation_category_weight harus di rentang 0–100")
	}

	if m.EvaluationCategoryDescription != nil {
		d := strings.TrimSpace(*m.EvaluationCategoryDescription)
		if d == "" {
			m.EvaluationCategoryDescription = nil
		} else {
			m.EvaluationCategoryDescription = &d
		}
	}
	return nil
}
