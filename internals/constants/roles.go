package constants

import "fmt"

// Role enum (closed) — nilai di klaim JWT harus salah satu dari ini
const (
	RoleSuperAdmin  = "superadmin"
	RoleAdminKampus = "admin_kampus"
	RoleUser        = "user"
	RoleReviewer    = "reviewer"
	RoleDikti       = "dikti"
)

// Template pesan error role
const (
	ErrOnlySuperAdminCanAccess  = "❌ Hanya super admin yang boleh mengakses fitur %s."
	ErrOnlyAdminKampusCanAccess = "❌ Hanya admin kampus atau super admin yang boleh mengakses fitur %s."
	ErrOnlyReviewerCanAccess    = "❌ Hanya reviewer yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorAdminKampus(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminKampusCanAccess, feature)
}

func RoleErrorReviewer(feature string) string {
	return fmt.Sprintf(ErrOnlyReviewerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdminKampus,
		RoleUser,
		RoleReviewer,
		RoleDikti,
	}

	AdminKampusAndAbove = []string{
		RoleAdminKampus,
		RoleSuperAdmin,
	}

	ReviewerAndAbove = []string{
		RoleReviewer,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

// IsValidRole memastikan nilai role termasuk enum tertutup di atas.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
