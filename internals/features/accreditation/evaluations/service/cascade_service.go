// file: internals/features/accreditation/evaluations/service/cascade_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
	templateModel "jurnalmu_backend/internals/features/accreditation/templates/model"
)

/* ============================================
   Cascade eksplisit (bukan FK magic)
   Urutan selalu dari daun: indikator → sub-kategori → esai → kategori.
============================================ */

// deleteSubCategoryChildren menghapus semua indikator milik sub-kategori.
func deleteSubCategoryChildren(tx *gorm.DB, subCategoryID uuid.UUID) error {
	return tx.Where("evaluation_indicator_sub_category_id = ?", subCategoryID).
		Delete(&model.EvaluationIndicatorModel{}).Error
}

// DeleteSubCategoryCascade menghapus sub-kategori + indikator di bawahnya
// dalam satu transaksi.
func DeleteSubCategoryCascade(db *gorm.DB, subCategoryID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var sub model.EvaluationSubCategoryModel
		if err := tx.Where("evaluation_sub_category_id = ?", subCategoryID).
			First(&sub).Error; err != nil {
			return err
		}
		if err := deleteSubCategoryChildren(tx, subCategoryID); err != nil {
			return err
		}
		return tx.Where("evaluation_sub_category_id = ?", subCategoryID).
			Delete(&model.EvaluationSubCategoryModel{}).Error
	})
}

// deleteCategoryTreeIn menghapus seluruh isi kategori (dipakai ulang oleh
// delete kategori tunggal dan delete template).
func deleteCategoryTreeIn(tx *gorm.DB, categoryID uuid.UUID) error {
	var subIDs []uuid.UUID
	if err := tx.Model(&model.EvaluationSubCategoryModel{}).
		Where("evaluation_sub_category_category_id = ?", categoryID).
		Pluck("evaluation_sub_category_id", &subIDs).Error; err != nil {
		return err
	}

	if len(subIDs) > 0 {
		if err := tx.Where("evaluation_indicator_sub_category_id IN ?", subIDs).
			Delete(&model.EvaluationIndicatorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("evaluation_sub_category_category_id = ?", categoryID).
			Delete(&model.EvaluationSubCategoryModel{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("essay_question_category_id = ?", categoryID).
		Delete(&model.EssayQuestionModel{}).Error; err != nil {
		return err
	}

	return tx.Where("evaluation_category_id = ?", categoryID).
		Delete(&model.EvaluationCategoryModel{}).Error
}

// DeleteCategoryCascade menghapus kategori + sub-kategori + indikator +
// esai di bawahnya. Irreversible; konfirmasi di sisi caller.
func DeleteCategoryCascade(db *gorm.DB, categoryID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cat model.EvaluationCategoryModel
		if err := tx.Where("evaluation_category_id = ?", categoryID).
			First(&cat).Error; err != nil {
			return err
		}
		return deleteCategoryTreeIn(tx, categoryID)
	})
}

/* ============================================
   Delete template (dengan proteksi "aktif terakhir")
============================================ */

// DeleteTemplate menghapus template beserta seluruh pohon evaluasinya.
// Template aktif TERAKHIR untuk tipenya dilindungi: multiple template
// aktif per tipe boleh hidup berdampingan, tapi yang terakhir tidak boleh
// pergi sebelum ada pengganti.
func DeleteTemplate(db *gorm.DB, templateID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var tpl templateModel.AccreditationTemplateModel
		if err := tx.Where("accreditation_template_id = ?", templateID).
			First(&tpl).Error; err != nil {
			return err
		}

		if tpl.AccreditationTemplateIsActive {
			var siblings int64
			if err := tx.Model(&templateModel.AccreditationTemplateModel{}).
				Where("accreditation_template_type = ? AND accreditation_template_is_active = ? AND accreditation_template_id <> ?",
					tpl.AccreditationTemplateType, true, templateID).
				Count(&siblings).Error; err != nil {
				return err
			}
			if siblings == 0 {
				return ErrProtectedTemplate
			}
		}

		var catIDs []uuid.UUID
		if err := tx.Model(&model.EvaluationCategoryModel{}).
			Where("evaluation_category_template_id = ?", templateID).
			Pluck("evaluation_category_id", &catIDs).Error; err != nil {
			return err
		}
		for _, catID := range catIDs {
			if err := deleteCategoryTreeIn(tx, catID); err != nil {
				return err
			}
		}

		return tx.Where("accreditation_template_id = ?", templateID).
			Delete(&templateModel.AccreditationTemplateModel{}).Error
	})
}
