// file: internals/features/accreditation/evaluations/model/evaluation_indicator_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func baseIndicator() EvaluationIndicatorModel {
	return EvaluationIndicatorModel{
		EvaluationIndicatorCode:       "IND-1.1",
		EvaluationIndicatorQuestion:   "Apakah jurnal terbit rutin?",
		EvaluationIndicatorAnswerType: AnswerTypeBoolean,
		EvaluationIndicatorWeight:     5,
	}
}

func strPtr(s string) *string { return &s }

func TestIndicatorBeforeSave_HierarchicalVariant(t *testing.T) {
	subID := uuid.New()
	m := baseIndicator()
	m.EvaluationIndicatorSubCategoryID = &subID
	require.NoError(t, m.BeforeSave(nil))
	require.False(t, m.IsLegacy())
}

func TestIndicatorBeforeSave_LegacyVariant(t *testing.T) {
	m := baseIndicator()
	m.EvaluationIndicatorLegacyCategory = strPtr("Tata Kelola")
	m.EvaluationIndicatorLegacySubCategory = strPtr("Kelembagaan")
	require.NoError(t, m.BeforeSave(nil))
	require.True(t, m.IsLegacy())
}

func TestIndicatorBeforeSave_MixedVariantRejected(t *testing.T) {
	subID := uuid.New()
	m := baseIndicator()
	m.EvaluationIndicatorSubCategoryID = &subID
	m.EvaluationIndicatorLegacyCategory = strPtr("Tata Kelola")
	m.EvaluationIndicatorLegacySubCategory = strPtr("Kelembagaan")
	require.Error(t, m.BeforeSave(nil))
}

func TestIndicatorBeforeSave_LegacyWithoutStringsRejected(t *testing.T) {
	m := baseIndicator()
	require.Error(t, m.BeforeSave(nil))

	m.EvaluationIndicatorLegacyCategory = strPtr("Tata Kelola")
	// sub_category legacy masih kosong
	require.Error(t, m.BeforeSave(nil))
}

func TestIndicatorBeforeSave_AnswerTypeEnum(t *testing.T) {
	subID := uuid.New()
	m := baseIndicator()
	m.EvaluationIndicatorSubCategoryID = &subID
	m.EvaluationIndicatorAnswerType = "numeric"
	require.Error(t, m.BeforeSave(nil))
}

func TestIndicatorBeforeSave_WeightBounds(t *testing.T) {
	subID := uuid.New()
	m := baseIndicator()
	m.EvaluationIndicatorSubCategoryID = &subID
	m.EvaluationIndicatorWeight = 101
	require.Error(t, m.BeforeSave(nil))
}
