// file: internals/features/accreditation/evaluations/dto/dto_validation_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validCreateIndicator() IndicatorCreateDTO {
	return IndicatorCreateDTO{
		EvaluationIndicatorSubCategoryID: uuid.New(),
		EvaluationIndicatorCode:          "IND-1.1",
		EvaluationIndicatorQuestion:      "Apakah jurnal memiliki dewan editor aktif?",
		EvaluationIndicatorWeight:        5,
		EvaluationIndicatorAnswerType:    "boolean",
	}
}

func TestIndicatorCreate_Valid(t *testing.T) {
	v := validator.New()
	p := validCreateIndicator()
	require.NoError(t, v.Struct(p))
}

func TestIndicatorCreate_AnswerTypeEnum(t *testing.T) {
	v := validator.New()

	for _, tipe := range []string{"boolean", "scale", "text"} {
		p := validCreateIndicator()
		p.EvaluationIndicatorAnswerType = tipe
		require.NoError(t, v.Struct(p), "answer_type %s harus lolos", tipe)
	}

	p := validCreateIndicator()
	p.EvaluationIndicatorAnswerType = "numeric"
	require.Error(t, v.Struct(p))
}

func TestIndicatorCreate_WeightBounds(t *testing.T) {
	v := validator.New()

	p := validCreateIndicator()
	p.EvaluationIndicatorWeight = 100
	require.NoError(t, v.Struct(p))

	p.EvaluationIndicatorWeight = 100.01
	require.Error(t, v.Struct(p))

	p.EvaluationIndicatorWeight = -1
	require.Error(t, v.Struct(p))
}

func TestIndicatorCreate_SubCategoryRequired(t *testing.T) {
	v := validator.New()
	p := validCreateIndicator()
	p.EvaluationIndicatorSubCategoryID = uuid.Nil
	require.Error(t, v.Struct(p))
}

func TestEssayCreate_MaxWordsBounds(t *testing.T) {
	v := validator.New()
	p := EssayCreateDTO{
		EssayQuestionCategoryID: uuid.New(),
		EssayQuestionCode:       "ESS-1",
		EssayQuestionQuestion:   "Jelaskan proses review di jurnal Anda.",
		EssayQuestionMaxWords:   500,
	}
	require.NoError(t, v.Struct(p))

	p.EssayQuestionMaxWords = 0
	require.Error(t, v.Struct(p))

	p.EssayQuestionMaxWords = 10001
	require.Error(t, v.Struct(p))
}

func TestReorderDTO_RejectsEmptyAndNilIDs(t *testing.T) {
	v := validator.New()

	require.Error(t, v.Struct(ReorderDTO{}))
	require.Error(t, v.Struct(ReorderDTO{OrderedIDs: []uuid.UUID{}}))
	require.Error(t, v.Struct(ReorderDTO{OrderedIDs: []uuid.UUID{uuid.Nil}}))
	require.NoError(t, v.Struct(ReorderDTO{OrderedIDs: []uuid.UUID{uuid.New()}}))
}

func TestCategoryCreate_WeightBounds(t *testing.T) {
	v := validator.New()
	p := CategoryCreateDTO{
		EvaluationCategoryTemplateID: uuid.New(),
		EvaluationCategoryCode:       "CAT-1",
		EvaluationCategoryName:       "Tata Kelola",
		EvaluationCategoryWeight:     40,
	}
	require.NoError(t, v.Struct(p))

	p.EvaluationCategoryWeight = 120
	require.Error(t, v.Struct(p))
}
