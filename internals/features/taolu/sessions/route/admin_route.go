package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "wushuku_backend/internals/features/taolu/sessions/controller"
)

// SessionAdminRoutes — manajemen sesi judging (coach/admin).
func SessionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewTaoluSessionController(db)

	router.Post("/sessions", ctrl.CreateSessions)
	router.Patch("/sessions", ctrl.UpdateSections)
	router.Post("/sessions/active-section", ctrl.SetActiveSection)
	router.Delete("/sessions", ctrl.CloseSession)
	router.Get("/sessions", ctrl.ListOpenSessions)
	router.Post("/finish", ctrl.FinishSession)
}
