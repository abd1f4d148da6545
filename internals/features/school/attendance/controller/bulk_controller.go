// file: internals/features/school/attendance/controller/bulk_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type BulkAttendanceController struct {
	DB      *gorm.DB
	service *service.BulkAttendanceService
}

func NewBulkAttendanceController(db *gorm.DB) *BulkAttendanceController {
	return &BulkAttendanceController{DB: db, service: service.NewBulkAttendanceService(db)}
}

// POST /api/t/attendance/bulk — absen satu kelas sekaligus.
// Respon: semua sukses 201, sebagian gagal 207, semua gagal 400.
func (ctrl *BulkAttendanceController) MarkClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}
	date, err := req.ParseDate()
	if err != nil {
		return jsonServiceError(c, err)
	}

	res, err := ctrl.service.MarkClass(schoolID, teacherID, req.ClassID, req.Subject, date, req.AttendanceRecords)
	if err != nil {
		// fail-fast: empty batch / unauthorized / already marked / teacher hilang
		return jsonServiceError(c, err)
	}

	resp := dto.FromBulkResult(res)
	switch {
	case res.ErrorCount == 0:
		return helper.JsonCreated(c, "Absensi kelas berhasil dicatat", resp)
	case res.SuccessfulCount == 0:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Semua baris absensi gagal",
			"data":    resp,
		})
	default:
		return helper.JsonPartial(c, "Sebagian baris absensi gagal", resp)
	}
}
