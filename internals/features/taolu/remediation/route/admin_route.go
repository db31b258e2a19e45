package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	remediationController "wushuku_backend/internals/features/taolu/remediation/controller"
)

// RemediationAdminRoutes — ronde remediasi single-session.
func RemediationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := remediationController.NewTaoluRemediationController(db)

	router.Get("/remediations", ctrl.GetRemediation)
	router.Post("/remediations", ctrl.SubmitRemediation)
}
