// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

/* ===============================
   Validator factory & field-map converter
=================================*/

// NewValidator: validator dengan nama field dari tag json,
// supaya pesan error tidak membocorkan nama struct Go ke klien.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationFieldErrors: konversi error validator → map field → pesan
// (bentuk yang dipakai JsonValidationError). ok=false kalau err bukan
// hasil validasi struct.
func ValidationFieldErrors(err error) (map[string][]string, bool) {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, false
	}
	out := make(map[string][]string, len(ves))
	for _, fe := range ves {
		out[fe.Field()] = append(out[fe.Field()], validationMessage(fe))
	}
	return out, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		return fmt.Sprintf("minimal %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s", fe.Param())
	case "gte":
		return fmt.Sprintf("harus >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("harus <= %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("harus salah satu dari: %s", fe.Param())
	case "uuid", "uuid4":
		return "harus UUID yang valid"
	case "email":
		return "harus email yang valid"
	case "url":
		return "harus URL yang valid"
	default:
		return fmt.Sprintf("tidak valid (%s)", fe.Tag())
	}
}
