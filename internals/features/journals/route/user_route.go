// file: internals/features/journals/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
	"jurnalmu_backend/internals/features/journals/controller"
	helper "jurnalmu_backend/internals/helpers"
	authMiddleware "jurnalmu_backend/internals/middlewares/auth"
)

/*
User routes: registry jurnal per PTM.
Contoh mount: JournalUserRoutes(app.Group("/api/u"), db)

Semua role terautentikasi bisa melihat (ter-scope PTM); mutasi hanya
admin_kampus & superadmin.
*/
func JournalUserRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewJournalController(db, v)

	journals := r.Group("/journals")
	journals.Get("/list", ctl.List)
	journals.Get("/:id", ctl.GetByID)

	mutasi := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdminKampus("mengelola jurnal"),
		constants.AdminKampusAndAbove,
	)
	journals.Post("/", mutasi, ctl.Create)
	journals.Patch("/:id", mutasi, ctl.Patch)
	journals.Delete("/:id", mutasi, ctl.Delete)
}
