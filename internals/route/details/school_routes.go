package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "ihtiyati_backend/internals/features/school/assignments/route"
	reportRoute "ihtiyati_backend/internals/features/school/reports/route"
	helper "ihtiyati_backend/internals/helpers/oss"
)

// SchoolRoutes registers the form-facing endpoints.
func SchoolRoutes(api fiber.Router, db *gorm.DB, blob helper.BlobService) {
	assignmentRoute.AssignmentRoutes(api, db, blob)
}

// AdminRoutes registers the report endpoints.
func AdminRoutes(admin fiber.Router, db *gorm.DB, blob helper.BlobService) {
	reportRoute.ReportRoutes(admin, db, blob)
}
