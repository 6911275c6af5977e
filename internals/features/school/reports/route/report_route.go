package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/features/school/reports/controller"
	helper "ihtiyati_backend/internals/helpers/oss"
	"ihtiyati_backend/internals/middlewares"
)

func ReportRoutes(admin fiber.Router, db *gorm.DB, blob helper.BlobService) {
	ctl := controller.NewReportController(db, blob)

	admin.Post("/reports/:kind", middlewares.ReportRateLimiter(), ctl.Generate)
}
