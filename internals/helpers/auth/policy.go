// file: internals/helpers/auth/policy.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"jurnalmu_backend/internals/constants"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   Access matrix (pure, tanpa state)
============================================ */

type Operation string

const (
	OpViewAny      Operation = "viewAny"
	OpView         Operation = "view"
	OpCreate       Operation = "create"
	OpUpdate       Operation = "update"
	OpDelete       Operation = "delete"
	OpReorder      Operation = "reorder"
	OpMove         Operation = "move"
	OpMigrate      Operation = "migrate"
	OpToggleActive Operation = "toggleActive"
)

type Resource string

const (
	ResTemplate      Resource = "accreditation_template"
	ResCategory      Resource = "evaluation_category"
	ResSubCategory   Resource = "evaluation_sub_category"
	ResIndicator     Resource = "evaluation_indicator"
	ResEssayQuestion Resource = "essay_question"
)

// CanAccess memutuskan akses murni dari (role, operation, resource).
// Aturan:
//   - template, category, sub-category, essay question: SEMUA operasi
//     (termasuk viewAny/view) hanya superadmin.
//   - indicator: viewAny/view terbuka untuk semua role terautentikasi,
//     mutasi hanya superadmin.
func CanAccess(role string, op Operation, res Resource) bool {
	if !constants.IsValidRole(role) {
		return false
	}
	if role == constants.RoleSuperAdmin {
		return true
	}
	if res == ResIndicator && (op == OpViewAny || op == OpView) {
		return true
	}
	return false
}

/* ============================================
   Fiber guard di atas matrix
============================================ */

// RequireAccess menolak request sebelum controller jalan; gagal = 403
// tanpa side effect (resource tidak pernah disentuh).
func RequireAccess(op Operation, res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if !CanAccess(role, op, res) {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
