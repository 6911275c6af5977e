package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/reports/service"
	settings "ihtiyati_backend/internals/features/school/settings/service"
	helperResp "ihtiyati_backend/internals/helpers"
	helper "ihtiyati_backend/internals/helpers/oss"
)

type ReportController struct {
	DB   *gorm.DB
	Blob helper.BlobService
	svc  *service.ReportService
}

func NewReportController(db *gorm.DB, blob helper.BlobService) *ReportController {
	return &ReportController{DB: db, Blob: blob, svc: service.NewReportService(db, blob)}
}

// Generate builds the :kind report (today|month) and answers with its URL.
func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != service.KindToday && kind != service.KindMonth {
		return helperResp.Error(c, fiber.StatusBadRequest, constants.MsgInvalidInput)
	}

	st, err := settings.Load(c.UserContext(), ctl.DB, ctl.Blob)
	if err != nil {
		return helperResp.FromAppError(c, err, constants.MsgReportFailed)
	}

	folderName := st.Get(constants.SettingReportFolderName)
	if folderName == "" {
		folderName = constants.DefaultReportFolderName
	}
	folderID, err := ctl.Blob.EnsureFolder(c.UserContext(), folderName)
	if err != nil {
		return helperResp.Error(c, fiber.StatusBadGateway, constants.MsgReportFailed)
	}
	if err := ctl.Blob.SetFolderPublicRead(c.UserContext(), folderID); err != nil {
		log.Printf("[REPORT] ⚠️ set public-read on %s failed: %v", folderID, err)
	}

	now := time.Now()
	title := reportTitle(st, kind, now)
	url, err := ctl.svc.Generate(c.UserContext(), kind, folderID, title, now)
	if err != nil {
		return helperResp.FromAppError(c, err, constants.MsgReportFailed)
	}

	return helperResp.JsonOK(c, constants.MsgReportReady, fiber.Map{"url": url})
}

func reportTitle(st settings.Settings, kind string, now time.Time) string {
	window := now.Format("2006-01-02")
	if kind == service.KindMonth {
		window = now.Format("2006-01")
	}
	return fmt.Sprintf("%s — %s", st.Get(constants.SettingLogSheetName), window)
}
