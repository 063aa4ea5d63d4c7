// file: internals/helpers/auth/policy_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"jurnalmu_backend/internals/constants"
)

func TestCanAccess_SuperAdminFullAccess(t *testing.T) {
	ops := []Operation{OpViewAny, OpView, OpCreate, OpUpdate, OpDelete, OpReorder, OpMove, OpMigrate, OpToggleActive}
	resources := []Resource{ResTemplate, ResCategory, ResSubCategory, ResIndicator, ResEssayQuestion}

	for _, op := range ops {
		for _, res := range resources {
			require.True(t, CanAccess(constants.RoleSuperAdmin, op, res),
				"superadmin harus bisa %s pada %s", op, res)
		}
	}
}

func TestCanAccess_IndicatorReadOpenToAllRoles(t *testing.T) {
	for _, role := range constants.AllRoles {
		require.True(t, CanAccess(role, OpViewAny, ResIndicator), "role %s", role)
		require.True(t, CanAccess(role, OpView, ResIndicator), "role %s", role)
	}
}

func TestCanAccess_NonSuperAdminMutationsDenied(t *testing.T) {
	mutations := []Operation{OpCreate, OpUpdate, OpDelete, OpReorder, OpMove, OpMigrate, OpToggleActive}
	others := []string{constants.RoleAdminKampus, constants.RoleUser, constants.RoleReviewer, constants.RoleDikti}
	resources := []Resource{ResTemplate, ResCategory, ResSubCategory, ResIndicator, ResEssayQuestion}

	for _, role := range others {
		for _, op := range mutations {
			for _, res := range resources {
				require.False(t, CanAccess(role, op, res),
					"role %s tidak boleh %s pada %s", role, op, res)
			}
		}
	}
}

func TestCanAccess_TemplateReadOnlySuperAdmin(t *testing.T) {
	require.False(t, CanAccess(constants.RoleAdminKampus, OpViewAny, ResTemplate))
	require.False(t, CanAccess(constants.RoleReviewer, OpView, ResCategory))
	require.False(t, CanAccess(constants.RoleDikti, OpViewAny, ResEssayQuestion))
}

func TestCanAccess_UnknownRoleDenied(t *testing.T) {
	require.False(t, CanAccess("", OpView, ResIndicator))
	require.False(t, CanAccess("admin", OpView, ResIndicator))
	require.False(t, CanAccess("SUPERADMIN", OpCreate, ResTemplate))
}

// Guard menolak sebelum handler jalan: 403 tanpa side effect.
func TestRequireAccess_ForbiddenBeforeHandler(t *testing.T) {
	app := fiber.New()
	handlerJalan := false

	app.Get("/tree",
		func(c *fiber.Ctx) error {
			c.Locals("userRole", constants.RoleAdminKampus)
			return c.Next()
		},
		RequireAccess(OpView, ResTemplate),
		func(c *fiber.Ctx) error {
			handlerJalan = true
			return c.SendString("ok")
		})

	resp, err := app.Test(httptest.NewRequest("GET", "/tree", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.False(t, handlerJalan)
}

func TestRequireAccess_MissingRoleUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/tree",
		RequireAccess(OpView, ResTemplate),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/tree", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAccess_SuperAdminPasses(t *testing.T) {
	app := fiber.New()
	app.Get("/tree",
		func(c *fiber.Ctx) error {
			c.Locals("userRole", constants.RoleSuperAdmin)
			return c.Next()
		},
		RequireAccess(OpView, ResTemplate),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/tree", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
