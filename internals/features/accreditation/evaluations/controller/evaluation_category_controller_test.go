// file: internals/features/accreditation/evaluations/controller/evaluation_category_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Payload tidak valid harus kembali sebagai 422 dengan peta field
// per kunci json — tanpa membocorkan nama struct Go di pesan.
func TestCategoryCreate_InvalidWeightReturnsFieldMap(t *testing.T) {
	ctl := NewEvaluationCategoryController(nil, nil)

	app := fiber.New()
	app.Post("/categories", ctl.Create)

	body := `{"evaluation_category_template_id":"` + uuid.NewString() + `",` +
		`"evaluation_category_code":"TK",` +
		`"evaluation_category_name":"Tata Kelola",` +
		`"evaluation_category_weight":120}`
	req := httptest.NewRequest(fiber.MethodPost, "/categories", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := string(raw)
	require.Contains(t, payload, `"error_code":"VALIDATION_ERROR"`)
	require.Contains(t, payload, `"errors"`)
	require.Contains(t, payload, `"evaluation_category_weight"`)
	require.NotContains(t, payload, "CategoryCreateDTO")
}

// Body yang bukan JSON valid tetap 400, bukan 422 field map.
func TestCategoryCreate_MalformedBodyBadRequest(t *testing.T) {
	ctl := NewEvaluationCategoryController(nil, nil)

	app := fiber.New()
	app.Post("/categories", ctl.Create)

	req := httptest.NewRequest(fiber.MethodPost, "/categories", strings.NewReader(`{"evaluation`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
