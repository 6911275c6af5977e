// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "ihtiyati_backend/internals/helpers/oss"
	"ihtiyati_backend/internals/middlewares"
	routeDetails "ihtiyati_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, blob helper.BlobService) {
	app.Use(middlewares.DBMiddleware(db))

	BaseRoutes(app, db)

	// ===================== PUBLIC (form front-end) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.SchoolRoutes(public, db, blob)

	// ===================== ADMIN (reports) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")
	routeDetails.AdminRoutes(admin, db, blob)
}
