// file: internals/route/details/accreditation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationRoute "jurnalmu_backend/internals/features/accreditation/evaluations/route"
	templateRoute "jurnalmu_backend/internals/features/accreditation/templates/route"
)

// AccreditationAdminRoutes memasang seluruh manajemen instrumen
// (template + pohon evaluasi) di group superadmin.
func AccreditationAdminRoutes(r fiber.Router, db *gorm.DB) {
	templateRoute.AccreditationTemplateAdminRoutes(r, db)
	evaluationRoute.EvaluationAdminRoutes(r, db)
}

// AccreditationUserRoutes memasang endpoint read-only indikator
// untuk user terautentikasi.
func AccreditationUserRoutes(r fiber.Router, db *gorm.DB) {
	evaluationRoute.EvaluationUserRoutes(r, db)
}
