// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/middlewares"
	authMiddleware "jurnalmu_backend/internals/middlewares/auth"
	routeDetails "jurnalmu_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, middlewares.LoginRateLimiter())

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group /api/u ...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== ADMIN (superadmin) =====================
	log.Println("[INFO] Setting up ADMIN group /api/a ...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Accreditation routes...")
	routeDetails.AccreditationAdminRoutes(admin, db)
	routeDetails.AccreditationUserRoutes(private, db)

	log.Println("[INFO] Mounting Portal routes...")
	routeDetails.PortalUserRoutes(private, db)
	routeDetails.PortalAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.AuthAdminRoutes(admin, db)
}
