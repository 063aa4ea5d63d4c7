// file: internals/features/accreditation/templates/controller/accreditation_template_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// Patch harus baca + cek unik + tulis dalam SATU transaksi;
// ekspektasi di bawah ketat berurutan mulai dari BEGIN.
func TestTemplatePatch_ReadCheckWriteInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ctl := NewAccreditationTemplateController(db, nil)

	app := fiber.New()
	app.Patch("/templates/:id", ctl.Patch)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accreditation_templates"`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"accreditation_template_id",
			"accreditation_template_name",
			"accreditation_template_version",
			"accreditation_template_type",
			"accreditation_template_is_active",
		}).AddRow(id, "Template Lama", "1.0", "akreditasi", true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accreditation_templates"`).
		WithArgs("Template Baru", id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE "accreditation_templates"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(fiber.MethodPatch, "/templates/"+id.String(),
		strings.NewReader(`{"accreditation_template_name":"Template Baru"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Pre-check nama duplikat: transaksi di-rollback tanpa INSERT.
func TestTemplateCreate_NameTakenPrecheck(t *testing.T) {
	db, mock := newMockDB(t)
	ctl := NewAccreditationTemplateController(db, nil)

	app := fiber.New()
	app.Post("/templates", ctl.Create)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accreditation_templates"`).
		WithArgs("Template Unggulan").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	req := httptest.NewRequest(fiber.MethodPost, "/templates",
		strings.NewReader(`{"accreditation_template_name":"Template Unggulan","accreditation_template_type":"akreditasi"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"errors"`)
	require.Contains(t, string(raw), "accreditation_template_name")
	require.NoError(t, mock.ExpectationsWereMet())
}

// Balapan yang lolos pre-check lalu kena uniqueIndex harus jadi
// field error 422 yang sama, bukan 500 generik.
func TestTemplateCreate_DuplicateKeyRaceAsFieldError(t *testing.T) {
	db, mock := newMockDB(t)
	ctl := NewAccreditationTemplateController(db, nil)

	app := fiber.New()
	app.Post("/templates", ctl.Create)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accreditation_templates"`).
		WithArgs("Template Unggulan").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "accreditation_templates"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	req := httptest.NewRequest(fiber.MethodPost, "/templates",
		strings.NewReader(`{"accreditation_template_name":"Template Unggulan","accreditation_template_type":"akreditasi"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"errors"`)
	require.Contains(t, string(raw), "accreditation_template_name")
	require.NoError(t, mock.ExpectationsWereMet())
}
