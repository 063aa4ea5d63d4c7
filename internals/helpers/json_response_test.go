// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	require.Equal(t, 3, p.TotalPages)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)

	last := BuildPaginationFromPage(45, 3, 20)
	require.False(t, last.HasNext)
	require.True(t, last.HasPrev)
}

func TestBuildPaginationFromPage_EmptyTotal(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)
	require.Equal(t, 1, p.TotalPages)
	require.False(t, p.HasNext)
	require.False(t, p.HasPrev)
}

func TestStatusToErrorCode(t *testing.T) {
	require.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	require.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	require.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	require.Equal(t, "ERROR", statusToErrorCode(418))
}
