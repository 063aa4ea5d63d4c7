// file: internals/features/accreditation/templates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/templates/controller"
	helper "jurnalmu_backend/internals/helpers"
	helperAuth "jurnalmu_backend/internals/helpers/auth"
)

/*
Admin routes: full CRUD template akreditasi.
Contoh mount: AccreditationTemplateAdminRoutes(app.Group("/api/a"), db)

Final paths:
- GET    /api/a/templates/list
- GET    /api/a/templates/:id
- POST   /api/a/templates
- PATCH  /api/a/templates/:id
- DELETE /api/a/templates/:id
*/
func AccreditationTemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewAccreditationTemplateController(db, v)

	templates := r.Group("/templates")
	templates.Get("/list",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResTemplate), ctl.List)
	templates.Post("/",
		helperAuth.RequireAccess(helperAuth.OpCreate, helperAuth.ResTemplate), ctl.Create)
	templates.Get("/:id",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResTemplate), ctl.GetByID)
	templates.Patch("/:id",
		helperAuth.RequireAccess(helperAuth.OpUpdate, helperAuth.ResTemplate), ctl.Patch)
	templates.Delete("/:id",
		helperAuth.RequireAccess(helperAuth.OpDelete, helperAuth.ResTemplate), ctl.Delete)
}
