// file: internals/features/assessments/service/assessment_service_test.go
package service

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFilterAnswers_DropsInactiveIndicatorKeys(t *testing.T) {
	aktif := uuid.New().String()
	nonAktif := uuid.New().String()

	raw := datatypes.JSON([]byte(`{"` + aktif + `": true, "` + nonAktif + `": "jawaban lama"}`))
	allowed := map[string]struct{}{aktif: {}}

	out, err := FilterAnswers(raw, allowed)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, sonic.Unmarshal(out, &m))
	require.Contains(t, m, aktif)
	require.NotContains(t, m, nonAktif)
}

func TestFilterAnswers_EmptyPassthrough(t *testing.T) {
	out, err := FilterAnswers(nil, map[string]struct{}{})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFilterAnswers_InvalidJSONRejected(t *testing.T) {
	_, err := FilterAnswers(datatypes.JSON([]byte(`[1,2,3]`)), map[string]struct{}{})
	require.Error(t, err)
}
