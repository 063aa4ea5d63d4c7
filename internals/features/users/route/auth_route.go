// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
	"jurnalmu_backend/internals/features/users/controller"
	helper "jurnalmu_backend/internals/helpers"
	authMiddleware "jurnalmu_backend/internals/middlewares/auth"
)

/*
Auth routes.

Final paths:
- POST /api/auth/login       (public, rate-limited di SetupRoutes)
- GET  /api/u/me             (authenticated)
- POST /api/a/users          (superadmin)
*/
func AuthRoutes(app *fiber.App, db *gorm.DB, loginLimiter fiber.Handler) {
	v := helper.NewValidator()
	ctl := controller.NewAuthController(db, v)

	auth := app.Group("/api/auth")
	if loginLimiter != nil {
		auth.Post("/login", loginLimiter, ctl.Login)
	} else {
		auth.Post("/login", ctl.Login)
	}
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewAuthController(db, v)

	r.Get("/me", ctl.Me)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewAuthController(db, v)

	r.Post("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorSuperAdmin("membuat user"), constants.SuperAdminOnly),
		ctl.Register)
}
