// file: internals/features/accreditation/evaluations/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/controller"
	helper "jurnalmu_backend/internals/helpers"
	helperAuth "jurnalmu_backend/internals/helpers/auth"
)

/*
User routes: read-only indikator untuk pengisian asesmen.
Contoh mount: EvaluationUserRoutes(app.Group("/api/u"), db)

Final paths:
- GET /api/u/indicators/list
- GET /api/u/indicators/:id
*/
func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	indCtl := controller.NewEvaluationIndicatorController(db, v)

	indicators := r.Group("/indicators")
	indicators.Get("/list",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResIndicator), indCtl.List)
	indicators.Get("/:id",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResIndicator), indCtl.GetByID)
}
