package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/features/school/assignments/controller"
	helper "ihtiyati_backend/internals/helpers/oss"
	"ihtiyati_backend/internals/middlewares"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB, blob helper.BlobService) {
	ctl := controller.NewAssignmentController(db, blob)

	api.Get("/initial-data", ctl.GetInitialData)
	api.Get("/teacher-stats", ctl.GetTeacherStats)
	api.Get("/assignments", ctl.ListAssignments)
	api.Post("/assignments", middlewares.SubmitRateLimiter(), ctl.SubmitAssignment)
}
