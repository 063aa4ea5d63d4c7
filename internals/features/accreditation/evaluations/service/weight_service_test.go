// file: internals/features/accreditation/evaluations/service/weight_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jurnalmu_backend/internals/features/accreditation/evaluations/model"
)

func bobot(w float64) model.EvaluationCategoryModel {
	return model.EvaluationCategoryModel{EvaluationCategoryWeight: w}
}

func TestSumWeights_Exact(t *testing.T) {
	sum, ok := SumWeights([]model.EvaluationCategoryModel{bobot(40), bobot(35), bobot(25)})
	require.InDelta(t, 100.0, sum, 0.001)
	require.True(t, ok)
}

func TestSumWeights_RoundingTolerance(t *testing.T) {
	// 33.33 * 3 = 99.99 — masih dianggap konsisten
	sum, ok := SumWeights([]model.EvaluationCategoryModel{bobot(33.33), bobot(33.33), bobot(33.34)})
	require.InDelta(t, 100.0, sum, 0.01)
	require.True(t, ok)
}

func TestSumWeights_Inconsistent(t *testing.T) {
	_, ok := SumWeights([]model.EvaluationCategoryModel{bobot(50), bobot(30)})
	require.False(t, ok)
}

func TestSumWeights_Empty(t *testing.T) {
	sum, ok := SumWeights(nil)
	require.Zero(t, sum)
	require.False(t, ok)
}
