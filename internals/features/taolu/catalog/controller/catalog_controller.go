package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogDTO "wushuku_backend/internals/features/taolu/catalog/dto"
	catalogService "wushuku_backend/internals/features/taolu/catalog/service"
	helper "wushuku_backend/internals/helpers"
)

type CatalogController struct {
	DB      *gorm.DB
	Catalog *catalogService.CatalogService
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db, Catalog: catalogService.NewCatalogService(db)}
}

// GET /forms
func (h *CatalogController) ListForms(c *fiber.Ctx) error {
	list, err := h.Catalog.ListForms()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar form", catalogDTO.FromFormModels(list))
}

// GET /deduction-codes
func (h *CatalogController) ListDeductionCodes(c *fiber.Ctx) error {
	list, err := h.Catalog.ListDeductionCodes()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar kode deduction", catalogDTO.FromDeductionCodeModels(list))
}

// GET /age-groups
func (h *CatalogController) ListAgeGroups(c *fiber.Ctx) error {
	list, err := h.Catalog.ListAgeGroups()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar kelompok umur", catalogDTO.FromAgeGroupModels(list))
}
