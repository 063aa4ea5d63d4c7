// file: internals/features/accreditation/evaluations/service/errors.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// DomainError membawa kode mesin yang stabil untuk klien (frontend
// menampilkan pesan, kode dipakai untuk branching).
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string { return e.Message }

var (
	// ErrInvalidCategoryMove: sub-kategori hanya boleh pindah ke kategori
	// dalam template yang sama; pelanggaran ditolak tanpa mutasi parsial.
	ErrInvalidCategoryMove = &DomainError{
		Code:    "invalid_category_move",
		Message: "Sub-kategori hanya dapat dipindahkan ke kategori dalam template yang sama",
		Status:  fiber.StatusUnprocessableEntity,
	}

	// ErrMigrationNotAllowed: migrasi hanya legal untuk baris legacy
	// (sub_category_id masih NULL).
	ErrMigrationNotAllowed = &DomainError{
		Code:    "migration_not_allowed",
		Message: "Indikator sudah hierarkis, tidak bisa dimigrasi ulang",
		Status:  fiber.StatusUnprocessableEntity,
	}

	// ErrProtectedTemplate: template aktif terakhir untuk tipenya tidak
	// boleh dihapus.
	ErrProtectedTemplate = &DomainError{
		Code:    "protected_template",
		Message: "Template aktif terakhir untuk tipe ini tidak boleh dihapus",
		Status:  fiber.StatusUnprocessableEntity,
	}
)

// NewValidationError untuk input yang lolos bind tapi gagal aturan domain
// (mis. id asing di payload reorder).
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf(format, args...),
		Status:  fiber.StatusUnprocessableEntity,
	}
}
