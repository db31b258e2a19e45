package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	refinementController "wushuku_backend/internals/features/taolu/refinement/controller"
	middlewares "wushuku_backend/internals/middlewares"
)

// RefinementAdminRoutes — window refinement (rekap + submit).
// Submit dibatasi rate limiter sendiri: satu submit = satu delta poin.
func RefinementAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := refinementController.NewTaoluRefinementController(db)

	router.Post("/refinement/summary", ctrl.Summary)
	router.Post("/refinement/submit", middlewares.RefinementSubmitRateLimiter(), ctrl.Submit)
}
