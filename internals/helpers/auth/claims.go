// file: internals/helpers/auth/claims.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	ErrNoUserID   = errors.New("user_id tidak ditemukan di context")
	ErrNoCampusID = errors.New("campus_id tidak ditemukan di context")
)

// GetUserRole membaca role dari locals (diisi oleh auth middleware).
func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserID
	}
	return id, nil
}

// GetCampusID membaca PTM aktif dari klaim token (tenant scoping).
func GetCampusID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("campus_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoCampusID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoCampusID
	}
	return id, nil
}
