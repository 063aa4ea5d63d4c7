// file: internals/features/accreditation/templates/model/accreditation_template_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipe template (enum tertutup)
const (
	TemplateTypeAkreditasi = "akreditasi"
	TemplateTypeIndeksasi  = "indeksasi"
)

type AccreditationTemplateModel struct {
	// ============ PK ============
	AccreditationTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:accreditation_template_id" json:"accreditation_template_id"`

	// ============ Identitas ============
	AccreditationTemplateName        string  `gorm:"type:text;not null;uniqueIndex;column:accreditation_template_name" json:"accreditation_template_name"`
	AccreditationTemplateDescription *string `gorm:"type:text;column:accreditation_template_description" json:"accreditation_template_description,omitempty"`
	AccreditationTemplateVersion     string  `gorm:"type:varchar(24);not null;default:'1.0';column:accreditation_template_version" json:"accreditation_template_version"`
	// "akreditasi" | "indeksasi"
	AccreditationTemplateType string `gorm:"type:varchar(16);not null;column:accreditation_template_type" json:"accreditation_template_type"`

	AccreditationTemplateIsActive      bool       `gorm:"not null;default:true;column:accreditation_template_is_active" json:"accreditation_template_is_active"`
	AccreditationTemplateEffectiveDate *time.Time `gorm:"type:timestamptz;column:accreditation_template_effective_date" json:"accreditation_template_effective_date,omitempty"`

	// JSONB meta (opsional / fleksibel, mis. referensi SK Dikti)
	AccreditationTemplateMeta datatypes.JSON `gorm:"type:jsonb;column:accreditation_template_meta" json:"accreditation_template_meta,omitempty"`

	// ============ Audit ============
	AccreditationTemplateCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:accreditation_template_created_at" json:"accreditation_template_created_at"`
	AccreditationTemplateUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:accreditation_template_updated_at" json:"accreditation_template_updated_at"`
}

func (AccreditationTemplateModel) TableName() string { return "accreditation_templates" }

// ============ Hooks: validation & light normalization ============
func (m *AccreditationTemplateModel) BeforeSave(tx *gorm.DB) error {
	m.AccreditationTemplateName = strings.TrimSpace(m.AccreditationTemplateName)
	if m.AccreditationTemplateName == "" {
		return errors.New("accreditation_template_name wajib diisi")
	}

	// Mirror CHECK: tipe harus salah satu enum
	switch m.AccreditationTemplateType {
	case TemplateTypeAkreditasi, TemplateTypeIndeksasi:
	default:
		return errors.New("accreditation_template_type harus 'akreditasi' atau 'indeksasi'")
	}

	if m.AccreditationTemplateDescription != nil {
		d := strings.TrimSpace(*m.AccreditationTemplateDescription)
		if d == "" {
			m.AccreditationTemplateDescription = nil
		} else {
			m.AccreditationTemplateDescription = &d
		}
	}
	return nil
}
