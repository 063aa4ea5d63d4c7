// file: internals/route/details/portal_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "jurnalmu_backend/internals/features/assessments/route"
	journalRoute "jurnalmu_backend/internals/features/journals/route"
)

// PortalUserRoutes: registry jurnal + asesmen (scoped per PTM/role).
func PortalUserRoutes(r fiber.Router, db *gorm.DB) {
	journalRoute.JournalUserRoutes(r, db)
	assessmentRoute.AssessmentUserRoutes(r, db)
}

// PortalAdminRoutes: penugasan reviewer oleh superadmin.
func PortalAdminRoutes(r fiber.Router, db *gorm.DB) {
	assessmentRoute.AssessmentAdminRoutes(r, db)
}
