// file: internals/features/accreditation/evaluations/service/migrate_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Migrasi satu arah: indikator yang sudah hierarkis tidak bisa dimigrasi
// ulang, transaksi rollback tanpa UPDATE.
func TestMigrateIndicator_AlreadyHierarchicalRejected(t *testing.T) {
	db, mock := newMockDB(t)

	indicatorID := uuid.New()
	currentSubID := uuid.New()
	targetSubID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "evaluation_indicators"`).
		WithArgs(indicatorID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_indicator_id", "evaluation_indicator_sub_category_id"}).
			AddRow(indicatorID, currentSubID))
	mock.ExpectRollback()

	migrated, err := MigrateIndicator(db, indicatorID, targetSubID)
	require.Nil(t, migrated)
	require.ErrorIs(t, err, ErrMigrationNotAllowed)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Baris legacy dimigrasi: sub_category_id terpasang, string legacy
// dikosongkan, sort_order mendarat di ekor sub tujuan.
func TestMigrateIndicator_LegacyRowMigrated(t *testing.T) {
	db, mock := newMockDB(t)

	indicatorID := uuid.New()
	targetSubID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "evaluation_indicators"`).
		WithArgs(indicatorID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_indicator_id", "evaluation_indicator_sub_category_id", "evaluation_indicator_legacy_category", "evaluation_indicator_legacy_sub_category"}).
			AddRow(indicatorID, nil, "Tata Kelola", "Kelembagaan"))
	mock.ExpectQuery(`SELECT \* FROM "evaluation_sub_categories"`).
		WithArgs(targetSubID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"evaluation_sub_category_id"}).AddRow(targetSubID))
	mock.ExpectQuery(`SELECT COALESCE`).
		WithArgs(targetSubID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5))
	mock.ExpectExec(`UPDATE "evaluation_indicators"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	migrated, err := MigrateIndicator(db, indicatorID, targetSubID)
	require.NoError(t, err)
	require.NotNil(t, migrated.EvaluationIndicatorSubCategoryID)
	require.Equal(t, targetSubID, *migrated.EvaluationIndicatorSubCategoryID)
	require.Nil(t, migrated.EvaluationIndicatorLegacyCategory)
	require.Nil(t, migrated.EvaluationIndicatorLegacySubCategory)
	require.Equal(t, 6, migrated.EvaluationIndicatorSortOrder)
	require.NoError(t, mock.ExpectationsWereMet())
}
