// file: internals/features/journals/dto/journal_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jurnalmu_backend/internals/features/journals/model"
)

// =======================
// Request DTO
// =======================

type JournalCreateDTO struct {
	JournalName      string  `json:"journal_name"      validate:"required,min=3,max=200"`
	JournalISSN      *string `json:"journal_issn,omitempty"      validate:"omitempty,max=16"`
	JournalEISSN     *string `json:"journal_e_issn,omitempty"    validate:"omitempty,max=16"`
	JournalPublisher *string `json:"journal_publisher,omitempty" validate:"omitempty,max=200"`
	JournalURL       *string `json:"journal_url,omitempty"       validate:"omitempty,url"`
	JournalSintaRank *int    `json:"journal_sinta_rank,omitempty" validate:"omitempty,min=1,max=6"`
	// hanya dipakai superadmin; admin_kampus/user selalu pakai campus_id dari token
	JournalCampusID *uuid.UUID `json:"journal_campus_id,omitempty"`
}

type JournalUpdateDTO struct {
	JournalName      *string `json:"journal_name,omitempty"      validate:"omitempty,min=3,max=200"`
	JournalISSN      *string `json:"journal_issn,omitempty"      validate:"omitempty,max=16"`
	JournalEISSN     *string `json:"journal_e_issn,omitempty"    validate:"omitempty,max=16"`
	JournalPublisher *string `json:"journal_publisher,omitempty" validate:"omitempty,max=200"`
	JournalURL       *string `json:"journal_url,omitempty"       validate:"omitempty,url"`
	JournalSintaRank *int    `json:"journal_sinta_rank,omitempty" validate:"omitempty,min=1,max=6"`
	JournalIsActive  *bool   `json:"journal_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type JournalResponseDTO struct {
	JournalID        uuid.UUID `json:"journal_id"`
	JournalCampusID  uuid.UUID `json:"journal_campus_id"`
	JournalName      string    `json:"journal_name"`
	JournalISSN      *string   `json:"journal_issn,omitempty"`
	JournalEISSN     *string   `json:"journal_e_issn,omitempty"`
	JournalPublisher *string   `json:"journal_publisher,omitempty"`
	JournalURL       *string   `json:"journal_url,omitempty"`
	JournalSintaRank *int      `json:"journal_sinta_rank,omitempty"`
	JournalIsActive  bool      `json:"journal_is_active"`
	JournalCreatedAt time.Time `json:"journal_created_at"`
	JournalUpdatedAt time.Time `json:"journal_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *JournalCreateDTO) ToModel(campusID uuid.UUID) model.JournalModel {
	return model.JournalModel{
		JournalCampusID:  campusID,
		JournalName:      strings.TrimSpace(p.JournalName),
		JournalISSN:      p.JournalISSN,
		JournalEISSN:     p.JournalEISSN,
		JournalPublisher: p.JournalPublisher,
		JournalURL:       p.JournalURL,
		JournalSintaRank: p.JournalSintaRank,
		JournalIsActive:  true,
	}
}

func (u *JournalUpdateDTO) ApplyUpdates(ent *model.JournalModel) {
	if u.JournalName != nil {
		ent.JournalName = strings.TrimSpace(*u.JournalName)
	}
	if u.JournalISSN != nil {
		ent.JournalISSN = u.JournalISSN
	}
	if u.JournalEISSN != nil {
		ent.JournalEISSN = u.JournalEISSN
	}
	if u.JournalPublisher != nil {
		ent.JournalPublisher = u.JournalPublisher
	}
	if u.JournalURL != nil {
		ent.JournalURL = u.JournalURL
	}
	if u.JournalSintaRank != nil {
		ent.JournalSintaRank = u.JournalSintaRank
	}
	if u.JournalIsActive != nil {
		ent.JournalIsActive = *u.JournalIsActive
	}
}

func JournalFromModel(ent model.JournalModel) JournalResponseDTO {
	return JournalResponseDTO{
		JournalID:        ent.JournalID,
		JournalCampusID:  ent.JournalCampusID,
		JournalName:      ent.JournalName,
		JournalISSN:      ent.JournalISSN,
		JournalEISSN:     ent.JournalEISSN,
		JournalPublisher: ent.JournalPublisher,
		JournalURL:       ent.JournalURL,
		JournalSintaRank: ent.JournalSintaRank,
		JournalIsActive:  ent.JournalIsActive,
		JournalCreatedAt: ent.JournalCreatedAt,
		JournalUpdatedAt: ent.JournalUpdatedAt,
	}
}

func JournalsFromModels(list []model.JournalModel) []JournalResponseDTO {
	out := make([]JournalResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, JournalFromModel(it))
	}
	return out
}
