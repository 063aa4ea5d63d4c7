// file: internals/features/accreditation/evaluations/service/migrate_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

// MigrateIndicator mengubah baris legacy (sub_category_id NULL) menjadi
// hierarkis: pasang sub_category_id, kosongkan string legacy. Transisi
// satu arah; baris yang sudah hierarkis ditolak dengan
// ErrMigrationNotAllowed tanpa mutasi. code/question/weight dipertahankan.
func MigrateIndicator(db *gorm.DB, indicatorID, subCategoryID uuid.UUID) (*model.EvaluationIndicatorModel, error) {
	var migrated model.EvaluationIndicatorModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var ind model.EvaluationIndicatorModel
		if err := tx.Where("evaluation_indicator_id = ?", indicatorID).
			First(&ind).Error; err != nil {
			return err
		}

		if !ind.IsLegacy() {
			return ErrMigrationNotAllowed
		}

		// Sub-kategori tujuan harus ada
		var sub model.EvaluationSubCategoryModel
		if err := tx.Where("evaluation_sub_category_id = ?", subCategoryID).
			First(&sub).Error; err != nil {
			return err
		}

		nextOrder, err := NextIndicatorOrder(tx, subCategoryID)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.EvaluationIndicatorModel{}).
			Where("evaluation_indicator_id = ?", ind.EvaluationIndicatorID).
			Updates(map[string]any{
				"evaluation_indicator_sub_category_id":     subCategoryID,
				"evaluation_indicator_legacy_category":     nil,
				"evaluation_indicator_legacy_sub_category": nil,
				"evaluation_indicator_sort_order":          nextOrder,
			}).Error; err != nil {
			return err
		}

		ind.EvaluationIndicatorSubCategoryID = &subCategoryID
		ind.EvaluationIndicatorLegacyCategory = nil
		ind.EvaluationIndicatorLegacySubCategory = nil
		ind.EvaluationIndicatorSortOrder = nextOrder
		migrated = ind
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &migrated, nil
}
