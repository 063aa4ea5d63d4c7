// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jurnalmu_backend/internals/features/users/model"
)

// =======================
// Request DTO
// =======================

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterDTO struct {
	UserName     string     `json:"user_name"      validate:"required,min=3,max=100"`
	UserEmail    string     `json:"user_email"     validate:"required,email"`
	UserPassword string     `json:"user_password"  validate:"required,min=8"`
	UserRole     string     `json:"user_role"      validate:"required,oneof=superadmin admin_kampus user reviewer dikti"`
	UserCampusID *uuid.UUID `json:"user_campus_id,omitempty"`
}

// =======================
// Response DTO
// =======================

type UserResponseDTO struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserCampusID  *uuid.UUID `json:"user_campus_id,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

type LoginResponseDTO struct {
	AccessToken string          `json:"access_token"`
	User        UserResponseDTO `json:"user"`
}

// =======================
// Mapper
// =======================

func UserFromModel(ent model.UserModel) UserResponseDTO {
	return UserResponseDTO{
		UserID:        ent.UserID,
		UserName:      ent.UserName,
		UserEmail:     ent.UserEmail,
		UserRole:      ent.UserRole,
		UserCampusID:  ent.UserCampusID,
		UserIsActive:  ent.UserIsActive,
		UserCreatedAt: ent.UserCreatedAt,
	}
}
