// file: internals/features/accreditation/evaluations/controller/common.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/service"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   RESP/ERR helpers (dipakai semua controller evaluasi)
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

// bindAndValidate parse body + validasi. Error validator dikembalikan
// mentah; petakan lewat respondBindError supaya jadi 422 field map.
func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return err
		}
	}
	return nil
}

// respondBindError: hasil validator jadi 422 dengan peta field per kunci
// json; error parse jadi 400. Tidak pernah membocorkan pesan mentah.
func respondBindError(c *fiber.Ctx, err error) error {
	if fields, ok := helper.ValidationFieldErrors(err); ok {
		return helper.JsonValidationError(c, fields)
	}
	return helper.JsonFiberError(c, err)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

// fromServiceError memetakan error service ke respons HTTP:
// DomainError → status+kode mesinnya, record-not-found → 404,
// sisanya → 500 generik (tidak pernah bocor exception mentah).
func fromServiceError(c *fiber.Ctx, err error) error {
	var de *service.DomainError
	if errors.As(err, &de) {
		return helper.JsonErrorCode(c, de.Status, de.Code, de.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}
