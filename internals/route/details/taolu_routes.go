package details

import (
	CatalogRoutes "wushuku_backend/internals/features/taolu/catalog/route"
	DeductionRoutes "wushuku_backend/internals/features/taolu/deductions/route"
	RefinementRoutes "wushuku_backend/internals/features/taolu/refinement/route"
	RemediationRoutes "wushuku_backend/internals/features/taolu/remediation/route"
	ReportRoutes "wushuku_backend/internals/features/taolu/reports/route"
	SessionRoutes "wushuku_backend/internals/features/taolu/sessions/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Untuk route user login (dengan token)
// Contoh akses: /api/u/taolu/forms
func TaoluUserRoutes(api fiber.Router, db *gorm.DB) {
	CatalogRoutes.CatalogUserRoutes(api, db)
	ReportRoutes.ReportUserRoutes(api, db)
}

// ✅ Untuk route judging (token + coach/admin/owner)
// Contoh akses: /api/a/taolu/sessions
func TaoluAdminRoutes(api fiber.Router, db *gorm.DB) {
	SessionRoutes.SessionAdminRoutes(api, db)
	DeductionRoutes.DeductionAdminRoutes(api, db)
	RemediationRoutes.RemediationAdminRoutes(api, db)
	RefinementRoutes.RefinementAdminRoutes(api, db)
}
