package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ihtiyati_backend/internals/constants"
	"ihtiyati_backend/internals/features/school/assignments/dto"
	"ihtiyati_backend/internals/features/school/assignments/model"
	"ihtiyati_backend/internals/features/school/assignments/service"
	settings "ihtiyati_backend/internals/features/school/settings/service"
	helperResp "ihtiyati_backend/internals/helpers"
	helper "ihtiyati_backend/internals/helpers/oss"
)

var validate = validator.New()

type AssignmentController struct {
	DB       *gorm.DB
	Blob     helper.BlobService
	recorder *service.RecorderService
	stats    *service.StatsService
}

func NewAssignmentController(db *gorm.DB, blob helper.BlobService) *AssignmentController {
	return &AssignmentController{
		DB:       db,
		Blob:     blob,
		recorder: service.NewRecorderService(db, blob),
		stats:    service.NewStatsService(db),
	}
}

// GetInitialData feeds the form on first load: settings-backed folder is
// provisioned as a side effect, then the dropdown lists + directory go out.
func (ctl *AssignmentController) GetInitialData(c *fiber.Ctx) error {
	if _, err := settings.Load(c.UserContext(), ctl.DB, ctl.Blob); err != nil {
		return helperResp.FromAppError(c, err, constants.MsgFetchFailed)
	}

	data, err := ctl.stats.DropdownData(c.UserContext())
	if err != nil {
		return helperResp.FromAppError(c, err, constants.MsgFetchFailed)
	}
	return helperResp.JsonOK(c, "ok", data)
}

// SubmitAssignment appends one row to the ledger. Whatever happens, the
// client gets a tagged payload, never a raw error.
func (ctl *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helperResp.Error(c, fiber.StatusBadRequest, constants.MsgInvalidInput)
	}
	if err := validate.Struct(req); err != nil {
		return helperResp.ValidationError(c, err)
	}

	res, err := ctl.recorder.Record(c.UserContext(), req)
	if err != nil {
		return helperResp.FromAppError(c, err, constants.MsgSaveFailed)
	}
	return helperResp.JsonCreated(c, constants.MsgAssignmentSaved, res)
}

// GetTeacherStats serves the full-ledger aggregates.
func (ctl *AssignmentController) GetTeacherStats(c *fiber.Ctx) error {
	rows, err := ctl.stats.LedgerSnapshot(c.UserContext())
	if err != nil {
		return helperResp.FromAppError(c, err, constants.MsgFetchFailed)
	}

	return helperResp.JsonOK(c, "ok", dto.TeacherStatsResponse{
		Frequency:     service.TeacherFrequency(rows),
		TopSubstitute: service.TopSeventhPeriodSubstitute(rows),
		LedgerSize:    len(rows),
	})
}

// ListAssignments pages through the ledger for the admin view, insertion
// order preserved.
func (ctl *AssignmentController) ListAssignments(c *fiber.Ctx) error {
	p := helperResp.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SubstituteAssignmentModel{}).
		Count(&total).Error; err != nil {
		return helperResp.Error(c, fiber.StatusInternalServerError, constants.MsgFetchFailed)
	}

	var rows []model.SubstituteAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("substitute_assignment_id").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helperResp.Error(c, fiber.StatusInternalServerError, constants.MsgFetchFailed)
	}

	data := service.SnapshotFromModels(rows)
	return helperResp.JsonList(c, "ok", data,
		helperResp.BuildPaginationFromPage(total, p.Page, p.PerPage, len(data)))
}
