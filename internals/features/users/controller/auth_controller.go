// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/users/dto"
	"jurnalmu_backend/internals/features/users/model"
	"jurnalmu_backend/internals/features/users/service"
	helper "jurnalmu_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AuthController{DB: db, Validator: v}
}

/* ============================================
   LOGIN
   POST /api/auth/login
============================================ */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p dto.LoginDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))

	var user model.UserModel
	if err := ctl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan seragam: jangan bocorkan email terdaftar atau tidak
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := service.CheckPasswordHash(user.UserPassword, p.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponseDTO{
		AccessToken: token,
		User:        dto.UserFromModel(user),
	})
}

/* ============================================
   ME
   GET /api/u/me
============================================ */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var user model.UserModel
	if err := ctl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "OK", dto.UserFromModel(user))
}

/* ============================================
   REGISTER (superadmin membuat akun)
   POST /api/a/users
============================================ */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var p dto.RegisterDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		if fields, ok := helper.ValidationFieldErrors(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payload tidak valid")
	}

	email := strings.ToLower(strings.TrimSpace(p.UserEmail))

	var cnt int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if cnt > 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"user_email": {"Email sudah terdaftar"},
		})
	}

	hash, err := service.HashPassword(p.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	ent := model.UserModel{
		UserName:     p.UserName,
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     p.UserRole,
		UserCampusID: p.UserCampusID,
		UserIsActive: true,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "Berhasil membuat user", dto.UserFromModel(ent))
}
