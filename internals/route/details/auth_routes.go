// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "jurnalmu_backend/internals/features/users/route"
)

// AuthRoutes: login publik (dengan rate limiter khusus login).
func AuthRoutes(app *fiber.App, db *gorm.DB, loginLimiter fiber.Handler) {
	userRoute.AuthRoutes(app, db, loginLimiter)
}

// AuthUserRoutes: profil user terautentikasi.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(r, db)
}

// AuthAdminRoutes: manajemen akun oleh superadmin.
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
