// file: internals/seeds/superadmin_seeder.go
package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"jurnalmu_backend/internals/configs"
	"jurnalmu_backend/internals/constants"
	userModel "jurnalmu_backend/internals/features/users/model"
	userService "jurnalmu_backend/internals/features/users/service"
)

// SeedSuperAdmin membuat akun superadmin pertama bila belum ada.
// Kredensial dari env SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD; idempotent.
func SeedSuperAdmin(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("SUPERADMIN_EMAIL", "superadmin@jurnalmu.id")))
	password := configs.GetEnv("SUPERADMIN_PASSWORD", "")
	if password == "" {
		log.Println("[SEED] SUPERADMIN_PASSWORD kosong, seeder dilewati")
		return
	}

	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleSuperAdmin).
		Count(&cnt).Error; err != nil {
		log.Printf("[SEED] gagal cek superadmin: %v", err)
		return
	}
	if cnt > 0 {
		return
	}

	hash, err := userService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] gagal hash password: %v", err)
		return
	}

	ent := userModel.UserModel{
		UserName:     "Super Admin",
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     constants.RoleSuperAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&ent).Error; err != nil {
		log.Printf("[SEED] gagal membuat superadmin: %v", err)
		return
	}
	log.Printf("[SEED] superadmin %s dibuat", email)
}
