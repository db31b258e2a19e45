package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deductionController "wushuku_backend/internals/features/taolu/deductions/controller"
)

// DeductionAdminRoutes — ledger deduction (keystroke + assignment).
func DeductionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := deductionController.NewTaoluDeductionController(db)

	router.Post("/deductions", ctrl.LogDeduction)
	router.Post("/deductions/assign", ctrl.AssignDeduction)
	router.Delete("/deductions/assign", ctrl.RemoveDeduction)
	router.Get("/deductions", ctrl.ListDeductions)
}
