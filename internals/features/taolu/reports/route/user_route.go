package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "wushuku_backend/internals/features/taolu/reports/controller"
)

// ReportUserRoutes — riwayat & agregasi, boleh dibaca semua user login.
func ReportUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewTaoluReportController(db)

	router.Get("/finished-sessions", ctrl.ListFinishedSessions)
	router.Get("/student-code-counts", ctrl.StudentCodeCounts)
}
