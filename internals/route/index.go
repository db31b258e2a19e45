// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	DBMiddleware "wushuku_backend/internals/middlewares"
	authMiddleware "wushuku_backend/internals/middlewares/auth"

	routeDetails "wushuku_backend/internals/route/details"

	"wushuku_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE (USER) → semua user login boleh baca katalog + laporan
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u/taolu",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// JUDGING (ADMIN) → coach/admin/owner yang memegang panel judging
	log.Println("[INFO] Setting up JUDGING group (Auth + RoleCheck)...")
	judging := app.Group("/api/a/taolu",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("taolu judging", constants.JudgingRoles...),
		DBMiddleware.DBMiddleware(db),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Taolu routes...")
	routeDetails.TaoluUserRoutes(private, db)
	routeDetails.TaoluAdminRoutes(judging, db)
}
