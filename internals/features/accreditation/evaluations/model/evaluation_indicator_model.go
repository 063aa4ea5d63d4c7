// file: internals/features/accreditation/evaluations/model/evaluation_indicator_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Tipe jawaban indikator (enum tertutup)
const (
	AnswerTypeBoolean = "boolean"
	AnswerTypeScale   = "scale"
	AnswerTypeText    = "text"
)

// EvaluationIndicatorModel adalah varian ber-tag:
//   - HIERARKIS: sub_category_id terisi, string legacy kosong (bentuk v1.1).
//   - LEGACY: sub_category_id NULL, category/sub_category string terisi
//     (baris pra-hierarki). Transisi satu-satunya: migrasi legacy → hierarkis.
type EvaluationIndicatorModel struct {
	// ============ PK & Owner ============
	EvaluationIndicatorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:evaluation_indicator_id" json:"evaluation_indicator_id"`
	// NULL = baris legacy
	EvaluationIndicatorSubCategoryID *uuid.UUID `gorm:"type:uuid;index;column:evaluation_indicator_sub_category_id" json:"evaluation_indicator_sub_category_id,omitempty"`

	// ============ Identitas ============
	EvaluationIndicatorCode        string  `gorm:"type:varchar(24);not null;column:evaluation_indicator_code" json:"evaluation_indicator_code"`
	EvaluationIndicatorQuestion    string  `gorm:"type:text;not null;column:evaluation_indicator_question" json:"evaluation_indicator_question"`
	EvaluationIndicatorDescription *string `gorm:"type:text;column:evaluation_indicator_description" json:"evaluation_indicator_description,omitempty"`

	EvaluationIndicatorWeight float64 `gorm:"type:numeric(5,2);not null;default:0;column:evaluation_indicator_weight" json:"evaluation_indicator_weight"`
	// "boolean" | "scale" | "text"
	EvaluationIndicatorAnswerType string `gorm:"type:varchar(16);not null;column:evaluation_indicator_answer_type" json:"evaluation_indicator_answer_type"`
	// Label opsi untuk answer_type=scale, mis. {"1","2","3","4","5"}
	EvaluationIndicatorScaleOptions pq.StringArray `gorm:"type:text[];column:evaluation_indicator_scale_options" json:"evaluation_indicator_scale_options,omitempty"`

	EvaluationIndicatorRequiresAttachment bool `gorm:"not null;default:false;column:evaluation_indicator_requires_attachment" json:"evaluation_indicator_requires_attachment"`
	EvaluationIndicatorSortOrder          int  `gorm:"type:integer;not null;default:0;column:evaluation_indicator_sort_order" json:"evaluation_indicator_sort_order"`
	EvaluationIndicatorIsActive           bool `gorm:"not null;default:true;column:evaluation_indicator_is_active" json:"evaluation_indicator_is_active"`

	// ============ Kompatibilitas legacy (pra-v1.1) ============
	// Hanya terisi saat sub_category_id NULL.
	EvaluationIndicatorLegacyCategory    *string `gorm:"type:text;column:evaluation_indicator_legacy_category" json:"evaluation_indicator_legacy_category,omitempty"`
	EvaluationIndicatorLegacySubCategory *string `gorm:"type:text;column:evaluation_indicator_legacy_sub_category" json:"evaluation_indicator_legacy_sub_category,omitempty"`

	// ============ Audit ============
	EvaluationIndicatorCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:evaluation_indicator_created_at" json:"evaluation_indicator_created_at"`
	EvaluationIndicatorUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:evaluation_indicator_updated_at" json:"evaluation_indicator_updated_at"`
}

func (EvaluationIndicatorModel) TableName() string { return "evaluation_indicators" }

// IsLegacy: true untuk baris pra-hierarki (belum menempel ke sub-kategori).
func (m *EvaluationIndicatorModel) IsLegacy() bool {
	return m.EvaluationIndicatorSubCategoryID == nil
}

// ============ Hooks ============
func (m *EvaluationIndicatorModel) BeforeSave(tx *gorm.DB) error {
	m.EvaluationIndicatorCode = strings.TrimSpace(m.EvaluationIndicatorCode)
	m.EvaluationIndicatorQuestion = strings.TrimSpace(m.EvaluationIndicatorQuestion)
	if m.EvaluationIndicatorCode == "" {
		return errors.New("evaluation_indicator_code wajib diisi")
	}

	// Mirror CHECK: enum answer_type
	switch m.EvaluationIndicatorAnswerType {
	case AnswerTypeBoolean, AnswerTypeScale, AnswerTypeText:
	default:
		return errors.New("evaluation_indicator_answer_type harus 'boolean', 'scale', atau 'text'")
	}

	// Mirror CHECK: bobot 0–100
	if m.EvaluationIndicatorWeight < 0 || m.EvaluationIndicatorWeight > 100 {
		return errors.New("evaluation_indicator_weight harus di rentang 0–100")
	}

	// Invariant varian: hierarkis XOR legacy, tidak boleh campur.
	if m.EvaluationIndicatorSubCategoryID != nil {
		if m.EvaluationIndicatorLegacyCategory != nil || m.EvaluationIndicatorLegacySubCategory != nil {
			return errors.New("indikator hierarkis tidak boleh membawa string legacy")
		}
	} else {
		if m.EvaluationIndicatorLegacyCategory == nil || m.EvaluationIndicatorLegacySubCategory == nil {
			return errors.New("indikator legacy wajib membawa string category & sub_category")
		}
	}
	return nil
}
