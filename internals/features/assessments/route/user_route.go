// file: internals/features/assessments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/constants"
	"jurnalmu_backend/internals/features/assessments/controller"
	helper "jurnalmu_backend/internals/helpers"
	authMiddleware "jurnalmu_backend/internals/middlewares/auth"
)

/*
User routes: pengisian & review asesmen.
Contoh mount: AssessmentUserRoutes(app.Group("/api/u"), db)

Final paths:
- GET   /api/u/assessments/list
- GET   /api/u/assessments/:id
- POST  /api/u/assessments
- PATCH /api/u/assessments/:id/answers
- POST  /api/u/assessments/:id/submit
- POST  /api/u/assessments/:id/complete   (reviewer)
*/
func AssessmentUserRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewAssessmentController(db, v)

	assessments := r.Group("/assessments")
	assessments.Get("/list", ctl.List)
	assessments.Get("/:id", ctl.GetByID)

	pengisi := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdminKampus("mengisi asesmen"),
		append([]string{constants.RoleUser}, constants.AdminKampusAndAbove...),
	)
	assessments.Post("/", pengisi, ctl.Create)
	assessments.Patch("/:id/answers", pengisi, ctl.PatchAnswers)
	assessments.Post("/:id/submit", pengisi, ctl.Submit)

	assessments.Post("/:id/complete",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorReviewer("menyelesaikan review"), constants.ReviewerAndAbove),
		ctl.Complete)
}

/*
Admin routes (superadmin): penugasan reviewer.
Contoh mount: AssessmentAdminRoutes(app.Group("/api/a"), db)
*/
func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()
	ctl := controller.NewAssessmentController(db, v)

	assessments := r.Group("/assessments")
	assessments.Get("/list", ctl.List)
	assessments.Get("/:id", ctl.GetByID)
	assessments.Post("/:id/assign",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorSuperAdmin("menunjuk reviewer"), constants.SuperAdminOnly),
		ctl.AssignReviewer)
}
