// file: internals/features/users/model/user_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
)

type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string     `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string     `gorm:"column:user_email;type:varchar(150);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword string     `gorm:"column:user_password;type:text;not null" json:"-"`
	UserRole     string     `gorm:"column:user_role;type:varchar(32);not null;default:'user'" json:"user_role"`
	// PTM (kampus) tempat user bernaung; superadmin & dikti tidak terikat kampus
	UserCampusID *uuid.UUID `gorm:"column:user_campus_id;type:uuid" json:"user_campus_id,omitempty"`
	UserIsActive bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserName = strings.TrimSpace(m.UserName)
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))
	if m.UserEmail == "" {
		return errors.New("user_email wajib diisi")
	}
	if !constants.IsValidRole(m.UserRole) {
		return errors.New("user_role tidak dikenal")
	}
	return nil
}
