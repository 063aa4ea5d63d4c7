// file: internals/features/accreditation/evaluations/controller/tree_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jurnalmu_backend/internals/features/accreditation/evaluations/service"
	helper "jurnalmu_backend/internals/helpers"
)

/* ============================================
   Tree assembler endpoint (read-only, superadmin)
============================================ */

type TreeController struct {
	DB *gorm.DB
}

func NewTreeController(db *gorm.DB) *TreeController {
	return &TreeController{DB: db}
}

// GET /api/a/templates/:id/tree
// Mengembalikan array node {id, type, data, children}.
func (ctl *TreeController) GetTree(c *fiber.Ctx) error {
	templateID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tree, err := service.BuildTree(ctl.DB, templateID)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", tree)
}

// GET /api/a/templates/:id/weight-check
// Laporan konsistensi bobot kategori (informasional).
func (ctl *TreeController) WeightCheck(c *fiber.Ctx) error {
	templateID, err := parseIDParam(c)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	report, err := service.CheckTemplateWeights(ctl.DB, templateID)
	if err != nil {
		return fromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", report)
}
