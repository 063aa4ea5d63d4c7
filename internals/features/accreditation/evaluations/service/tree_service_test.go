// file: internals/features/accreditation/evaluations/service/tree_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

func kategori(id uuid.UUID, order int) model.EvaluationCategoryModel {
	return model.EvaluationCategoryModel{
		EvaluationCategoryID:           id,
		EvaluationCategoryDisplayOrder: order,
	}
}

func subKategori(id, catID uuid.UUID, order int) model.EvaluationSubCategoryModel {
	return model.EvaluationSubCategoryModel{
		EvaluationSubCategoryID:           id,
		EvaluationSubCategoryCategoryID:   catID,
		EvaluationSubCategoryDisplayOrder: order,
	}
}

func indikator(id uuid.UUID, subID *uuid.UUID, order int) model.EvaluationIndicatorModel {
	return model.EvaluationIndicatorModel{
		EvaluationIndicatorID:            id,
		EvaluationIndicatorSubCategoryID: subID,
		EvaluationIndicatorSortOrder:     order,
	}
}

func esai(id, catID uuid.UUID, order int) model.EssayQuestionModel {
	return model.EssayQuestionModel{
		EssayQuestionID:           id,
		EssayQuestionCategoryID:   catID,
		EssayQuestionDisplayOrder: order,
	}
}

func TestAssembleTree_FullHierarchy(t *testing.T) {
	cat1, cat2 := uuid.New(), uuid.New()
	sub1, sub2 := uuid.New(), uuid.New()
	ind1, ind2, ind3 := uuid.New(), uuid.New(), uuid.New()
	es1 := uuid.New()

	roots := AssembleTree(
		[]model.EvaluationCategoryModel{kategori(cat2, 2), kategori(cat1, 1)},
		[]model.EvaluationSubCategoryModel{
			subKategori(sub2, cat1, 2),
			subKategori(sub1, cat1, 1),
		},
		[]model.EvaluationIndicatorModel{
			indikator(ind2, &sub1, 2),
			indikator(ind1, &sub1, 1),
			indikator(ind3, &sub2, 1),
		},
		[]model.EssayQuestionModel{esai(es1, cat1, 1)},
	)

	require.Len(t, roots, 2)
	require.Equal(t, cat1, roots[0].ID)
	require.Equal(t, NodeTypeCategory, roots[0].Type)
	require.Equal(t, cat2, roots[1].ID)

	// anak cat1: sub1, sub2, lalu esai di belakang
	children := roots[0].Children
	require.Len(t, children, 3)
	require.Equal(t, sub1, children[0].ID)
	require.Equal(t, NodeTypeSubCategory, children[0].Type)
	require.Equal(t, sub2, children[1].ID)
	require.Equal(t, es1, children[2].ID)
	require.Equal(t, NodeTypeEssay, children[2].Type)

	// indikator sub1 urut sort_order
	require.Len(t, children[0].Children, 2)
	require.Equal(t, ind1, children[0].Children[0].ID)
	require.Equal(t, ind2, children[0].Children[1].ID)
	require.Equal(t, NodeTypeIndicator, children[0].Children[0].Type)

	require.Len(t, children[1].Children, 1)
	require.Equal(t, ind3, children[1].Children[0].ID)
}

func TestAssembleTree_SkipsLegacyIndicators(t *testing.T) {
	cat := uuid.New()
	sub := uuid.New()
	hier, legacy := uuid.New(), uuid.New()

	roots := AssembleTree(
		[]model.EvaluationCategoryModel{kategori(cat, 1)},
		[]model.EvaluationSubCategoryModel{subKategori(sub, cat, 1)},
		[]model.EvaluationIndicatorModel{
			indikator(hier, &sub, 1),
			indikator(legacy, nil, 2), // legacy: sub_category_id NULL
		},
		nil,
	)

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	require.Len(t, roots[0].Children[0].Children, 1)
	require.Equal(t, hier, roots[0].Children[0].Children[0].ID)
}

func TestAssembleTree_EmptyTemplate(t *testing.T) {
	roots := AssembleTree(nil, nil, nil, nil)
	require.NotNil(t, roots)
	require.Empty(t, roots)
}

func TestAssembleTree_EssaysOnlyCategory(t *testing.T) {
	cat := uuid.New()
	es1, es2 := uuid.New(), uuid.New()

	roots := AssembleTree(
		[]model.EvaluationCategoryModel{kategori(cat, 1)},
		nil, nil,
		[]model.EssayQuestionModel{esai(es2, cat, 2), esai(es1, cat, 1)},
	)

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 2)
	require.Equal(t, es1, roots[0].Children[0].ID)
	require.Equal(t, es2, roots[0].Children[1].ID)
	// children node daun tetap slice kosong, bukan nil (kontrak JSON)
	require.NotNil(t, roots[0].Children[0].Children)
}
