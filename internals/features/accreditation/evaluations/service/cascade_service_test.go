// file: internals/features/accreditation/evaluations/service/cascade_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Template aktif terakhir untuk tipenya tidak boleh dihapus: transaksi
// rollback sebelum ada DELETE.
func TestDeleteTemplate_LastActiveProtected(t *testing.T) {
	db, mock := newMockDB(t)

	templateID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accreditation_templates"`).
		WithArgs(templateID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"accreditation_template_id", "accreditation_template_type", "accreditation_template_is_active"}).
			AddRow(templateID, "akreditasi", true))
	// tidak ada template aktif lain bertipe sama
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accreditation_templates"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := DeleteTemplate(db, templateID)
	require.ErrorIs(t, err, ErrProtectedTemplate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Template non-aktif tanpa kategori langsung dihapus tanpa cek proteksi.
func TestDeleteTemplate_InactiveDeletesDirectly(t *testing.T) {
	db, mock := newMockDB(t)

	templateID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accreditation_templates"`).
		WithArgs(templateID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"accreditation_template_id", "accreditation_template_type", "accreditation_template_is_active"}).
			AddRow(templateID, "akreditasi", false))
	mock.ExpectQuery(`SELECT "evaluation_category_id" FROM "evaluation_categories"`).
		WithArgs(templateID).
		WillReturnRows(sqlmock.NewRows([]string{"evaluation_category_id"}))
	mock.ExpectExec(`DELETE FROM "accreditation_templates"`).
		WithArgs(templateID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteTemplate(db, templateID)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
