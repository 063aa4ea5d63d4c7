// file: internals/features/journals/model/journal_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalModel: jurnal milik satu PTM (kampus). sinta_rank 1..6, null = belum terindeks.
type JournalModel struct {
	JournalID       uuid.UUID  `gorm:"column:journal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"journal_id"`
	JournalCampusID uuid.UUID  `gorm:"column:journal_campus_id;type:uuid;not null;index" json:"journal_campus_id"`
	JournalName     string     `gorm:"column:journal_name;type:varchar(200);not null" json:"journal_name"`
	JournalISSN     *string    `gorm:"column:journal_issn;type:varchar(16)" json:"journal_issn,omitempty"`
	JournalEISSN    *string    `gorm:"column:journal_e_issn;type:varchar(16)" json:"journal_e_issn,omitempty"`
	JournalPublisher *string   `gorm:"column:journal_publisher;type:varchar(200)" json:"journal_publisher,omitempty"`
	JournalURL      *string    `gorm:"column:journal_url;type:text" json:"journal_url,omitempty"`
	JournalSintaRank *int      `gorm:"column:journal_sinta_rank;check:journal_sinta_rank BETWEEN 1 AND 6" json:"journal_sinta_rank,omitempty"`
	JournalIsActive bool       `gorm:"column:journal_is_active;not null;default:true" json:"journal_is_active"`

	JournalCreatedAt time.Time      `gorm:"column:journal_created_at;autoCreateTime" json:"journal_created_at"`
	JournalUpdatedAt time.Time      `gorm:"column:journal_updated_at;autoUpdateTime" json:"journal_updated_at"`
	JournalDeletedAt gorm.DeletedAt `gorm:"column:journal_deleted_at;index" json:"-"`
}

func (JournalModel) TableName() string { return "journals" }

func (m *JournalModel) BeforeSave(tx *gorm.DB) error {
	m.JournalName = strings.TrimSpace(m.JournalName)
	if m.JournalName == "" {
		return errors.New("journal_name wajib diisi")
	}
	if m.JournalSintaRank != nil && (*m.JournalSintaRank < 1 || *m.JournalSintaRank > 6) {
		return errors.New("journal_sinta_rank harus 1..6")
	}
	return nil
}
