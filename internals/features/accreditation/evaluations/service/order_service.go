// file: internals/features/accreditation/evaluations/service/order_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

/* ============================================
   Renumber murni (dipakai reorder kategori & sub-kategori)
============================================ */

// Renumber memetakan id → display_order 1..N sesuai urutan kiriman.
// Gagal kalau kiriman bukan permutasi persis dari existing (id asing,
// duplikat, atau kurang). Idempoten: kiriman sama dua kali menghasilkan
// mapping yang sama.
func Renumber(submitted, existing []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(submitted) != len(existing) {
		return nil, NewValidationError("jumlah id tidak cocok: kirim %d, ada %d", len(submitted), len(existing))
	}

	known := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	out := make(map[uuid.UUID]int, len(submitted))
	for i, id := range submitted {
		if !known[id] {
			return nil, NewValidationError("id %s bukan anggota scope reorder ini", id)
		}
		if _, dup := out[id]; dup {
			return nil, NewValidationError("id %s terkirim ganda", id)
		}
		out[id] = i + 1
	}
	return out, nil
}

/* ============================================
   Reorder kategori (scope: satu template)
============================================ */

// ReorderCategories menulis ulang display_order 1..N untuk kategori milik
// templateID sesuai urutan orderedIDs, dalam SATU transaksi (baca + tulis)
// supaya tidak ada lost update saat dua admin menyusun bersamaan.
func ReorderCategories(db *gorm.DB, templateID uuid.UUID, orderedIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []uuid.UUID
		if err := tx.Model(&model.EvaluationCategoryModel{}).
			Where("evaluation_category_template_id = ?", templateID).
			Pluck("evaluation_category_id", &existing).Error; err != nil {
			return err
		}

		orders, err := Renumber(orderedIDs, existing)
		if err != nil {
			return err
		}

		for id, order := range orders {
			if err := tx.Model(&model.EvaluationCategoryModel{}).
				Where("evaluation_category_id = ?", id).
				Update("evaluation_category_display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

/* ============================================
   Reorder sub-kategori (scope: satu kategori)
============================================ */

func ReorderSubCategories(db *gorm.DB, categoryID uuid.UUID, orderedIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []uuid.UUID
		if err := tx.Model(&model.EvaluationSubCategoryModel{}).
			Where("evaluation_sub_category_category_id = ?", categoryID).
			Pluck("evaluation_sub_category_id", &existing).Error; err != nil {
			return err
		}

		orders, err := Renumber(orderedIDs, existing)
		if err != nil {
			return err
		}

		for id, order := range orders {
			if err := tx.Model(&model.EvaluationSubCategoryModel{}).
				Where("evaluation_sub_category_id = ?", id).
				Update("evaluation_sub_category_display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

/* ============================================
   Next display_order helpers (create tanpa display_order)
============================================ */

// NextCategoryOrder: max+1 display_order kategori dalam satu template.
func NextCategoryOrder(tx *gorm.DB, templateID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&model.EvaluationCategoryModel{}).
		Where("evaluation_category_template_id = ?", templateID).
		Select("COALESCE(MAX(evaluation_category_display_order), 0)").
		Scan(&max).Error
	return max + 1, err
}

// NextSubCategoryOrder: max+1 display_order sub-kategori dalam satu kategori.
func NextSubCategoryOrder(tx *gorm.DB, categoryID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&model.EvaluationSubCategoryModel{}).
		Where("evaluation_sub_category_category_id = ?", categoryID).
		Select("COALESCE(MAX(evaluation_sub_category_display_order), 0)").
		Scan(&max).Error
	return max + 1, err
}

// NextEssayOrder: max+1 display_order esai dalam satu kategori.
func NextEssayOrder(tx *gorm.DB, categoryID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&model.EssayQuestionModel{}).
		Where("essay_question_category_id = ?", categoryID).
		Select("COALESCE(MAX(essay_question_display_order), 0)").
		Scan(&max).Error
	return max + 1, err
}

// NextIndicatorOrder: max+1 sort_order indikator dalam satu sub-kategori.
func NextIndicatorOrder(tx *gorm.DB, subCategoryID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&model.EvaluationIndicatorModel{}).
		Where("evaluation_indicator_sub_category_id = ?", subCategoryID).
		Select("COALESCE(MAX(evaluation_indicator_sort_order), 0)").
		Scan(&max).Error
	return max + 1, err
}
