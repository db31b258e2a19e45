package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "wushuku_backend/internals/features/taolu/catalog/controller"
)

// CatalogUserRoutes — katalog read-only untuk picker di UI judging.
func CatalogUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := catalogController.NewCatalogController(db)

	router.Get("/forms", ctrl.ListForms)
	router.Get("/deduction-codes", ctrl.ListDeductionCodes)
	router.Get("/age-groups", ctrl.ListAgeGroups)
}
