// file: internals/features/accreditation/evaluations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/controller"
	helper "jurnalmu_backend/internals/helpers"
	helperAuth "jurnalmu_backend/internals/helpers/auth"
)

/*
Admin routes: pohon evaluasi lengkap di bawah template.
Contoh mount: EvaluationAdminRoutes(app.Group("/api/a"), db)

Final paths:
- GET    /api/a/templates/:id/tree
- GET    /api/a/templates/:id/weight-check
- GET    /api/a/templates/:id/categories
- POST   /api/a/templates/:id/categories/reorder
- CRUD   /api/a/categories
- GET    /api/a/categories/:id/sub-categories
- POST   /api/a/categories/:id/sub-categories/reorder
- GET    /api/a/categories/:id/essay-questions
- CRUD   /api/a/sub-categories (+ POST /:id/move)
- CRUD   /api/a/indicators (+ POST /:id/migrate, PATCH /:id/toggle-active)
- CRUD   /api/a/essay-questions
*/
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := helper.NewValidator()

	catCtl := controller.NewEvaluationCategoryController(db, v)
	subCtl := controller.NewEvaluationSubCategoryController(db, v)
	indCtl := controller.NewEvaluationIndicatorController(db, v)
	essayCtl := controller.NewEssayQuestionController(db, v)
	treeCtl := controller.NewTreeController(db)

	// ---------- TEMPLATE SCOPED ----------
	templates := r.Group("/templates")
	templates.Get("/:id/tree",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResTemplate), treeCtl.GetTree)
	templates.Get("/:id/weight-check",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResTemplate), treeCtl.WeightCheck)
	templates.Get("/:id/categories",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResCategory), catCtl.ListByTemplate)
	templates.Post("/:id/categories/reorder",
		helperAuth.RequireAccess(helperAuth.OpReorder, helperAuth.ResCategory), catCtl.Reorder)

	// ---------- CATEGORIES ----------
	categories := r.Group("/categories")
	categories.Post("/",
		helperAuth.RequireAccess(helperAuth.OpCreate, helperAuth.ResCategory), catCtl.Create)
	categories.Get("/:id",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResCategory), catCtl.GetByID)
	categories.Patch("/:id",
		helperAuth.RequireAccess(helperAuth.OpUpdate, helperAuth.ResCategory), catCtl.Patch)
	categories.Delete("/:id",
		helperAuth.RequireAccess(helperAuth.OpDelete, helperAuth.ResCategory), catCtl.Delete)
	categories.Get("/:id/sub-categories",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResSubCategory), subCtl.ListByCategory)
	categories.Post("/:id/sub-categories/reorder",
		helperAuth.RequireAccess(helperAuth.OpReorder, helperAuth.ResSubCategory), subCtl.Reorder)
	categories.Get("/:id/essay-questions",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResEssayQuestion), essayCtl.ListByCategory)

	// ---------- SUB CATEGORIES ----------
	subCategories := r.Group("/sub-categories")
	subCategories.Post("/",
		helperAuth.RequireAccess(helperAuth.OpCreate, helperAuth.ResSubCategory), subCtl.Create)
	subCategories.Patch("/:id",
		helperAuth.RequireAccess(helperAuth.OpUpdate, helperAuth.ResSubCategory), subCtl.Patch)
	subCategories.Post("/:id/move",
		helperAuth.RequireAccess(helperAuth.OpMove, helperAuth.ResSubCategory), subCtl.Move)
	subCategories.Delete("/:id",
		helperAuth.RequireAccess(helperAuth.OpDelete, helperAuth.ResSubCategory), subCtl.Delete)

	// ---------- INDICATORS ----------
	indicators := r.Group("/indicators")
	indicators.Get("/list",
		helperAuth.RequireAccess(helperAuth.OpViewAny, helperAuth.ResIndicator), indCtl.List)
	indicators.Post("/",
		helperAuth.RequireAccess(helperAuth.OpCreate, helperAuth.ResIndicator), indCtl.Create)
	indicators.Get("/:id",
		helperAuth.RequireAccess(helperAuth.OpView, helperAuth.ResIndicator), indCtl.GetByID)
	indicators.Patch("/:id",
		helperAuth.RequireAccess(helperAuth.OpUpdate, helperAuth.ResIndicator), indCtl.Patch)
	indicators.Post("/:id/migrate",
		helperAuth.RequireAccess(helperAuth.OpMigrate, helperAuth.ResIndicator), indCtl.Migrate)
	indicators.Patch("/:id/toggle-active",
		helperAuth.RequireAccess(helperAuth.OpToggleActive, helperAuth.ResIndicator), indCtl.ToggleActive)
	indicators.Delete("/:id",
		helperAuth.RequireAccess(helperAuth.OpDelete, helperAuth.ResIndicator), indCtl.Delete)

	// ---------- ESSAY QUESTIONS ----------
	essays := r.Group("/essay-questions")
	essays.Post("/",
		helperAuth.RequireAccess(helperAuth.OpCreate, helperAuth.ResEssayQuestion), essayCtl.Create)
	essays.Patch("/:id",
		helperAuth.RequireAccess(helperAuth.OpUpdate, helperAuth.ResEssayQuestion), essayCtl.Patch)
	essays.Delete("/:id",
		helperAuth.RequireAccess(helperAuth.OpDelete, helperAuth.ResEssayQuestion), essayCtl.Delete)
}
