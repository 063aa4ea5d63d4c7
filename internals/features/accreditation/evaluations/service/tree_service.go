// file: internals/features/accreditation/evaluations/service/tree_service.go
package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
	templateModel "jurnalmu_backend/internals/features/accreditation/templates/model"
)

/* ============================================
   Bentuk node tree (dikonsumsi frontend)
============================================ */

const (
	NodeTypeCategory    = "category"
	NodeTypeSubCategory = "subcategory"
	NodeTypeIndicator   = "indicator"
	NodeTypeEssay       = "essay"
)

type TreeNode struct {
	ID       uuid.UUID  `json:"id"`
	Type     string     `json:"type"`
	Data     any        `json:"data"`
	Children []TreeNode `json:"children"`
}

/* ============================================
   Assembler murni (urutan dipaku):
   - kategori urut display_order
   - anak kategori: sub-kategori dulu (display_order), LALU esai
     (display_order) di belakangnya
   - anak sub-kategori: indikator urut sort_order
============================================ */

func AssembleTree(
	categories []model.EvaluationCategoryModel,
	subCategories []model.EvaluationSubCategoryModel,
	indicators []model.EvaluationIndicatorModel,
	essays []model.EssayQuestionModel,
) []TreeNode {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].EvaluationCategoryDisplayOrder < categories[j].EvaluationCategoryDisplayOrder
	})
	sort.SliceStable(subCategories, func(i, j int) bool {
		return subCategories[i].EvaluationSubCategoryDisplayOrder < subCategories[j].EvaluationSubCategoryDisplayOrder
	})
	sort.SliceStable(indicators, func(i, j int) bool {
		return indicators[i].EvaluationIndicatorSortOrder < indicators[j].EvaluationIndicatorSortOrder
	})
	sort.SliceStable(essays, func(i, j int) bool {
		return essays[i].EssayQuestionDisplayOrder < essays[j].EssayQuestionDisplayOrder
	})

	indicatorsBySub := make(map[uuid.UUID][]model.EvaluationIndicatorModel)
	for _, ind := range indicators {
		if ind.EvaluationIndicatorSubCategoryID == nil {
			continue // baris legacy tidak punya tempat di tree
		}
		key := *ind.EvaluationIndicatorSubCategoryID
		indicatorsBySub[key] = append(indicatorsBySub[key], ind)
	}

	subsByCategory := make(map[uuid.UUID][]model.EvaluationSubCategoryModel)
	for _, sub := range subCategories {
		subsByCategory[sub.EvaluationSubCategoryCategoryID] = append(subsByCategory[sub.EvaluationSubCategoryCategoryID], sub)
	}

	essaysByCategory := make(map[uuid.UUID][]model.EssayQuestionModel)
	for _, es := range essays {
		essaysByCategory[es.EssayQuestionCategoryID] = append(essaysByCategory[es.EssayQuestionCategoryID], es)
	}

	roots := make([]TreeNode, 0, len(categories))
	for _, cat := range categories {
		catNode := TreeNode{
			ID:       cat.EvaluationCategoryID,
			Type:     NodeTypeCategory,
			Data:     cat,
			Children: []TreeNode{},
		}

		for _, sub := range subsByCategory[cat.EvaluationCategoryID] {
			subNode := TreeNode{
				ID:       sub.EvaluationSubCategoryID,
				Type:     NodeTypeSubCategory,
				Data:     sub,
				Children: []TreeNode{},
			}
			for _, ind := range indicatorsBySub[sub.EvaluationSubCategoryID] {
				subNode.Children = append(subNode.Children, TreeNode{
					ID:       ind.EvaluationIndicatorID,
					Type:     NodeTypeIndicator,
					Data:     ind,
					Children: []TreeNode{},
				})
			}
			catNode.Children = append(catNode.Children, subNode)
		}

		// esai selalu di belakang sub-kategori
		for _, es := range essaysByCategory[cat.EvaluationCategoryID] {
			catNode.Children = append(catNode.Children, TreeNode{
				ID:       es.EssayQuestionID,
				Type:     NodeTypeEssay,
				Data:     es,
				Children: []TreeNode{},
			})
		}

		roots = append(roots, catNode)
	}
	return roots
}

/* ============================================
   BuildTree: muat dari DB lalu rakit
============================================ */

// BuildTree membangun pohon lengkap sebuah template. Template yang tidak
// ada menghasilkan gorm.ErrRecordNotFound (→ 404 di controller).
func BuildTree(db *gorm.DB, templateID uuid.UUID) ([]TreeNode, error) {
	var tpl templateModel.AccreditationTemplateModel
	if err := db.Where("accreditation_template_id = ?", templateID).
		First(&tpl).Error; err != nil {
		return nil, err
	}

	var categories []model.EvaluationCategoryModel
	if err := db.Where("evaluation_category_template_id = ?", templateID).
		Order("evaluation_category_display_order ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	catIDs := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		catIDs = append(catIDs, c.EvaluationCategoryID)
	}

	var subCategories []model.EvaluationSubCategoryModel
	var essays []model.EssayQuestionModel
	var indicators []model.EvaluationIndicatorModel

	if len(catIDs) > 0 {
		if err := db.Where("evaluation_sub_category_category_id IN ?", catIDs).
			Order("evaluation_sub_category_display_order ASC").
			Find(&subCategories).Error; err != nil {
			return nil, err
		}
		if err := db.Where("essay_question_category_id IN ?", catIDs).
			Order("essay_question_display_order ASC").
			Find(&essays).Error; err != nil {
			return nil, err
		}
	}

	subIDs := make([]uuid.UUID, 0, len(subCategories))
	for _, s := range subCategories {
		subIDs = append(subIDs, s.EvaluationSubCategoryID)
	}
	if len(subIDs) > 0 {
		if err := db.Where("evaluation_indicator_sub_category_id IN ?", subIDs).
			Order("evaluation_indicator_sort_order ASC").
			Find(&indicators).Error; err != nil {
			return nil, err
		}
	}

	return AssembleTree(categories, subCategories, indicators, essays), nil
}
