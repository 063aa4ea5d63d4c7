// file: internals/features/accreditation/evaluations/service/weight_service.go
package service

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

/* ============================================
   Verifikasi bobot (informasional, bukan hard constraint)
   Konvensi: jumlah bobot kategori per template = 100.
============================================ */

type WeightReport struct {
	TemplateID    uuid.UUID            `json:"template_id"`
	CategoryCount int                  `json:"category_count"`
	WeightSum     float64              `json:"weight_sum"`
	Consistent    bool                 `json:"consistent"`
	PerCategory   []CategoryWeightItem `json:"per_category"`
}

type CategoryWeightItem struct {
	CategoryID uuid.UUID `json:"category_id"`
	Code       string    `json:"code"`
	Weight     float64   `json:"weight"`
}

// SumWeights murni: total bobot + flag konsisten (toleransi pembulatan
// numeric(5,2)).
func SumWeights(categories []model.EvaluationCategoryModel) (float64, bool) {
	var sum float64
	for _, c := range categories {
		sum += c.EvaluationCategoryWeight
	}
	return sum, math.Abs(sum-100.0) < 0.01
}

// CheckTemplateWeights memuat kategori sebuah template dan melaporkan
// konsistensi bobotnya. Tidak pernah menolak tulisan; hanya lapor.
func CheckTemplateWeights(db *gorm.DB, templateID uuid.UUID) (*WeightReport, error) {
	var categories []model.EvaluationCategoryModel
	if err := db.Where("evaluation_category_template_id = ?", templateID).
		Order("evaluation_category_display_order ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	sum, consistent := SumWeights(categories)
	report := &WeightReport{
		TemplateID:    templateID,
		CategoryCount: len(categories),
		WeightSum:     sum,
		Consistent:    consistent,
		PerCategory:   make([]CategoryWeightItem, 0, len(categories)),
	}
	for _, c := range categories {
		report.PerCategory = append(report.PerCategory, CategoryWeightItem{
			CategoryID: c.EvaluationCategoryID,
			Code:       c.EvaluationCategoryCode,
			Weight:     c.EvaluationCategoryWeight,
		})
	}
	return report, nil
}
