// file: internals/features/accreditation/evaluations/service/move_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

// Pindah lintas template harus ditolak SEBELUM ada UPDATE apa pun:
// transaksi di-rollback dan tidak ada statement tulis yang dieksekusi.
func TestMoveSubCategory_CrossTemplateRejected(t *testing.T) {
	db, mock := newMockDB(t)

	subID := uuid.New()
	sourceCatID := uuid.New()
	targetCatID := uuid.New()
	templateA := uuid.New()
	templateB := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "evaluation_sub_categories"`).
		WithArgs(subID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_sub_category_id", "evaluation_sub_category_category_id"}).
			AddRow(subID, sourceCatID))
	mock.ExpectQuery(`SELECT \* FROM "evaluation_categories"`).
		WithArgs(sourceCatID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_category_id", "evaluation_category_template_id"}).
			AddRow(sourceCatID, templateA))
	mock.ExpectQuery(`SELECT \* FROM "evaluation_categories"`).
		WithArgs(targetCatID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_category_id", "evaluation_category_template_id"}).
			AddRow(targetCatID, templateB))
	mock.ExpectRollback()

	moved, err := MoveSubCategory(db, subID, targetCatID)
	require.Nil(t, moved)
	require.ErrorIs(t, err, ErrInvalidCategoryMove)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveSubCategory_SameTemplateAppendsAtTail(t *testing.T) {
	db, mock := newMockDB(t)

	subID := uuid.New()
	sourceCatID := uuid.New()
	targetCatID := uuid.New()
	templateID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "evaluation_sub_categories"`).
		WithArgs(subID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_sub_category_id", "evaluation_sub_category_category_id"}).
			AddRow(subID, sourceCatID))
	mock.ExpectQuery(`SELECT \* FROM "evaluation_categories"`).
		WithArgs(sourceCatID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_category_id", "evaluation_category_template_id"}).
			AddRow(sourceCatID, templateID))
	mock.ExpectQuery(`SELECT \* FROM "evaluation_categories"`).
		WithArgs(targetCatID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"evaluation_category_id", "evaluation_category_template_id"}).
			AddRow(targetCatID, templateID))
	// max(display_order) target saat ini = 3 → sub mendarat di 4
	mock.ExpectQuery(`SELECT COALESCE`).
		WithArgs(targetCatID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectExec(`UPDATE "evaluation_sub_categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	moved, err := MoveSubCategory(db, subID, targetCatID)
	require.NoError(t, err)
	require.Equal(t, targetCatID, moved.EvaluationSubCategoryCategoryID)
	require.Equal(t, 4, moved.EvaluationSubCategoryDisplayOrder)
	require.NoError(t, mock.ExpectationsWereMet())
}
