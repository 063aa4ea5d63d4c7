// file: internals/features/accreditation/templates/dto/accreditation_template_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jurnalmu_backend/internals/features/accreditation/templates/model"
)

// =======================
// Request DTO
// =======================

type TemplateCreateDTO struct {
	AccreditationTemplateName        string     `json:"accreditation_template_name"        validate:"required,min=3"`
	AccreditationTemplateDescription *string    `json:"accreditation_template_description,omitempty" validate:"omitempty"`
	AccreditationTemplateVersion     string     `json:"accreditation_template_version"     validate:"omitempty,max=24"`
	AccreditationTemplateType        string     `json:"accreditation_template_type"        validate:"required,oneof=akreditasi indeksasi"`
	AccreditationTemplateEffectiveDate *time.Time `json:"accreditation_template_effective_date,omitempty"`
	// pointer: bedakan "tidak dikirim" vs "false"
	AccreditationTemplateIsActive *bool          `json:"accreditation_template_is_active,omitempty"`
	AccreditationTemplateMeta     datatypes.JSON `json:"accreditation_template_meta,omitempty"`
}

type TemplateUpdateDTO struct {
	AccreditationTemplateName        *string    `json:"accreditation_template_name,omitempty"        validate:"omitempty,min=3"`
	AccreditationTemplateDescription *string    `json:"accreditation_template_description,omitempty"`
	AccreditationTemplateVersion     *string    `json:"accreditation_template_version,omitempty"     validate:"omitempty,max=24"`
	AccreditationTemplateType        *string    `json:"accreditation_template_type,omitempty"        validate:"omitempty,oneof=akreditasi indeksasi"`
	AccreditationTemplateEffectiveDate *time.Time `json:"accreditation_template_effective_date,omitempty"`
	AccreditationTemplateIsActive    *bool           `json:"accreditation_template_is_active,omitempty"`
	AccreditationTemplateMeta        *datatypes.JSON `json:"accreditation_template_meta,omitempty"`
}

// (opsional) filter list
type TemplateFilterDTO struct {
	Type   *string `query:"type"   validate:"omitempty,oneof=akreditasi indeksasi"`
	Active *bool   `query:"active" validate:"omitempty"`
}

// =======================
// Response DTO
// =======================

type TemplateResponseDTO struct {
	AccreditationTemplateID            uuid.UUID      `json:"accreditation_template_id"`
	AccreditationTemplateName          string         `json:"accreditation_template_name"`
	AccreditationTemplateDescription   *string        `json:"accreditation_template_description,omitempty"`
	AccreditationTemplateVersion       string         `json:"accreditation_template_version"`
	AccreditationTemplateType          string         `json:"accreditation_template_type"`
	AccreditationTemplateIsActive      bool           `json:"accreditation_template_is_active"`
	AccreditationTemplateEffectiveDate *time.Time     `json:"accreditation_template_effective_date,omitempty"`
	AccreditationTemplateMeta          datatypes.JSON `json:"accreditation_template_meta,omitempty"`
	AccreditationTemplateCreatedAt     time.Time      `json:"accreditation_template_created_at"`
	AccreditationTemplateUpdatedAt     time.Time      `json:"accreditation_template_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *TemplateCreateDTO) Normalize() {
	p.AccreditationTemplateName = strings.TrimSpace(p.AccreditationTemplateName)
	p.AccreditationTemplateVersion = strings.TrimSpace(p.AccreditationTemplateVersion)
	p.AccreditationTemplateType = strings.ToLower(strings.TrimSpace(p.AccreditationTemplateType))
}

func (p *TemplateCreateDTO) ToModel() model.AccreditationTemplateModel {
	isActive := true
	if p.AccreditationTemplateIsActive != nil {
		isActive = *p.AccreditationTemplateIsActive // hormati input eksplisit
	}
	version := p.AccreditationTemplateVersion
	if version == "" {
		version = "1.0"
	}
	return model.AccreditationTemplateModel{
		AccreditationTemplateName:          p.AccreditationTemplateName,
		AccreditationTemplateDescription:   p.AccreditationTemplateDescription,
		AccreditationTemplateVersion:       version,
		AccreditationTemplateType:          p.AccreditationTemplateType,
		AccreditationTemplateIsActive:      isActive,
		AccreditationTemplateEffectiveDate: p.AccreditationTemplateEffectiveDate,
		AccreditationTemplateMeta:          p.AccreditationTemplateMeta,
	}
}

func (u *TemplateUpdateDTO) ApplyUpdates(ent *model.AccreditationTemplateModel) {
	if u.AccreditationTemplateName != nil {
		ent.AccreditationTemplateName = strings.TrimSpace(*u.AccreditationTemplateName)
	}
	if u.AccreditationTemplateDescription != nil {
		ent.AccreditationTemplateDescription = u.AccreditationTemplateDescription
	}
	if u.AccreditationTemplateVersion != nil {
		ent.AccreditationTemplateVersion = strings.TrimSpace(*u.AccreditationTemplateVersion)
	}
	if u.AccreditationTemplateType != nil {
		ent.AccreditationTemplateType = strings.ToLower(strings.TrimSpace(*u.AccreditationTemplateType))
	}
	if u.AccreditationTemplateEffectiveDate != nil {
		ent.AccreditationTemplateEffectiveDate = u.AccreditationTemplateEffectiveDate
	}
	if u.AccreditationTemplateIsActive != nil {
		ent.AccreditationTemplateIsActive = *u.AccreditationTemplateIsActive
	}
	if u.AccreditationTemplateMeta != nil {
		ent.AccreditationTemplateMeta = *u.AccreditationTemplateMeta
	}
}

// Mapper entity -> response
func FromModel(ent model.AccreditationTemplateModel) TemplateResponseDTO {
	return TemplateResponseDTO{
		AccreditationTemplateID:            ent.AccreditationTemplateID,
		AccreditationTemplateName:          ent.AccreditationTemplateName,
		AccreditationTemplateDescription:   ent.AccreditationTemplateDescription,
		AccreditationTemplateVersion:       ent.AccreditationTemplateVersion,
		AccreditationTemplateType:          ent.AccreditationTemplateType,
		AccreditationTemplateIsActive:      ent.AccreditationTemplateIsActive,
		AccreditationTemplateEffectiveDate: ent.AccreditationTemplateEffectiveDate,
		AccreditationTemplateMeta:          ent.AccreditationTemplateMeta,
		AccreditationTemplateCreatedAt:     ent.AccreditationTemplateCreatedAt,
		AccreditationTemplateUpdatedAt:     ent.AccreditationTemplateUpdatedAt,
	}
}

func FromModels(list []model.AccreditationTemplateModel) []TemplateResponseDTO {
	out := make([]TemplateResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
