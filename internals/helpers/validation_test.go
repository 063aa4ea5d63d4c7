// file: internals/helpers/validation_test.go
package helper

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type contohDTO struct {
	Nama  string  `json:"contoh_nama"  validate:"required,min=3"`
	Bobot float64 `json:"contoh_bobot" validate:"gte=0,lte=100"`
}

// Kunci field map harus nama tag json, bukan nama field struct Go.
func TestValidationFieldErrors_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()
	err := v.Struct(&contohDTO{Nama: "Tata Kelola", Bobot: 120})
	require.Error(t, err)

	fields, ok := ValidationFieldErrors(err)
	require.True(t, ok)
	require.Equal(t, []string{"harus <= 100"}, fields["contoh_bobot"])
	require.NotContains(t, fields, "Bobot")
}

func TestValidationFieldErrors_CollectsMultipleFields(t *testing.T) {
	v := NewValidator()
	err := v.Struct(&contohDTO{Nama: "", Bobot: -1})
	require.Error(t, err)

	fields, ok := ValidationFieldErrors(err)
	require.True(t, ok)
	require.Equal(t, []string{"wajib diisi"}, fields["contoh_nama"])
	require.Equal(t, []string{"harus >= 0"}, fields["contoh_bobot"])
}

func TestValidationFieldErrors_NonValidatorError(t *testing.T) {
	fields, ok := ValidationFieldErrors(errors.New("boom"))
	require.False(t, ok)
	require.Nil(t, fields)
}

// Error non-fiber tidak boleh bikin panic maupun bocor ke klien.
func TestJsonFiberError_NonFiberErrorBecomes500(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return JsonFiberError(c, errors.New("driver: bad connection"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "bad connection")
}

func TestJsonFiberError_UnwrapsFiberCode(t *testing.T) {
	app := fiber.New()
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		wrapped := fmt.Errorf("scope: %w",
			fiber.NewError(fiber.StatusForbidden, "Token tidak memuat campus_id"))
		return JsonFiberError(c, wrapped)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/forbidden", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
