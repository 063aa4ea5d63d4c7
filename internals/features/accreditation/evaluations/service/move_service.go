// file: internals/features/accreditation/evaluations/service/move_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

// MoveSubCategory memindahkan sub-kategori ke kategori lain DALAM template
// yang sama. Target di template lain ditolak dengan ErrInvalidCategoryMove
// sebelum ada mutasi apa pun. Sukses = sub-kategori menempel ke target dan
// di-append di ekor urutan target (max+1). Satu transaksi penuh.
func MoveSubCategory(db *gorm.DB, subCategoryID, targetCategoryID uuid.UUID) (*model.EvaluationSubCategoryModel, error) {
	var moved model.EvaluationSubCategoryModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var sub model.EvaluationSubCategoryModel
		if err := tx.Where("evaluation_sub_category_id = ?", subCategoryID).
			First(&sub).Error; err != nil {
			return err
		}

		var source model.EvaluationCategoryModel
		if err := tx.Where("evaluation_category_id = ?", sub.EvaluationSubCategoryCategoryID).
			First(&source).Error; err != nil {
			return err
		}

		var target model.EvaluationCategoryModel
		if err := tx.Where("evaluation_category_id = ?", targetCategoryID).
			First(&target).Error; err != nil {
			return err
		}

		if target.EvaluationCategoryTemplateID != source.EvaluationCategoryTemplateID {
			return ErrInvalidCategoryMove
		}

		nextOrder, err := NextSubCategoryOrder(tx, targetCategoryID)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.EvaluationSubCategoryModel{}).
			Where("evaluation_sub_category_id = ?", sub.EvaluationSubCategoryID).
			Updates(map[string]any{
				"evaluation_sub_category_category_id":   targetCategoryID,
				"evaluation_sub_category_display_order": nextOrder,
			}).Error; err != nil {
			return err
		}

		sub.EvaluationSubCategoryCategoryID = targetCategoryID
		sub.EvaluationSubCategoryDisplayOrder = nextOrder
		moved = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}
