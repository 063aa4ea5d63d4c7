// file: internals/features/accreditation/evaluations/service/order_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRenumber_Permutation(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	out, err := Renumber([]uuid.UUID{c, a, b}, []uuid.UUID{a, b, c})
	require.NoError(t, err)
	require.Equal(t, 1, out[c])
	require.Equal(t, 2, out[a])
	require.Equal(t, 3, out[b])
}

func TestRenumber_Idempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	submitted := []uuid.UUID{b, a}
	existing := []uuid.UUID{a, b}

	first, err := Renumber(submitted, existing)
	require.NoError(t, err)
	second, err := Renumber(submitted, existing)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRenumber_ForeignID(t *testing.T) {
	a, b, asing := uuid.New(), uuid.New(), uuid.New()

	_, err := Renumber([]uuid.UUID{a, asing}, []uuid.UUID{a, b})
	require.Error(t, err)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "VALIDATION_ERROR", de.Code)
	require.Equal(t, 422, de.Status)
}

func TestRenumber_CountMismatch(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	_, err := Renumber([]uuid.UUID{a}, []uuid.UUID{a, b})
	require.Error(t, err)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 422, de.Status)
}

func TestRenumber_DuplicateID(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	_, err := Renumber([]uuid.UUID{a, a}, []uuid.UUID{a, b})
	require.Error(t, err)
}

func TestRenumber_Empty(t *testing.T) {
	out, err := Renumber(nil, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}
