// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB      *gorm.DB
	service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, service: service.NewAttendanceService(db)}
}

/* ===================== CREATE ===================== */

// POST /api/t/attendance — teacher menandai satu siswa, teacher_id dari token.
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.create(c, schoolID, teacherID, false)
}

// POST /api/a/attendance — admin wajib menyebut attendance_teacher_id.
func (ctrl *AttendanceController) AdminCreate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.create(c, schoolID, uuid.Nil, true)
}

func (ctrl *AttendanceController) create(c *fiber.Ctx, schoolID, teacherID uuid.UUID, teacherFromBody bool) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if teacherFromBody {
		if req.AttendanceTeacherID == nil {
			return helper.JsonValidationError(c, map[string][]string{
				"attendance_teacher_id": {"required"},
			})
		}
		teacherID = *req.AttendanceTeacherID
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	in, err := req.ToInput(schoolID, teacherID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	row, err := ctrl.service.Create(in)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Absensi berhasil dicatat", dto.FromAttendanceModel(*row))
}

/* ===================== LIST / DETAIL ===================== */

// GET /api/a/attendance — semua filter opsional, AND.
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.list(c, schoolID, nil)
}

// GET /api/t/attendance — list milik guru sendiri (teacher_id dipaksa dari token).
func (ctrl *AttendanceController) TeacherList(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.list(c, schoolID, &teacherID)
}

// GET /api/u/attendance — list milik siswa sendiri.
func (ctrl *AttendanceController) StudentList(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.FilterAttendanceRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	req.StudentID = &studentID
	return ctrl.listWithFilter(c, schoolID, req)
}

func (ctrl *AttendanceController) list(c *fiber.Ctx, schoolID uuid.UUID, forceTeacher *uuid.UUID) error {
	var req dto.FilterAttendanceRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if forceTeacher != nil {
		req.TeacherID = forceTeacher
	}
	return ctrl.listWithFilter(c, schoolID, req)
}

func (ctrl *AttendanceController) listWithFilter(c *fiber.Ctx, schoolID uuid.UUID, req dto.FilterAttendanceRequest) error {
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}
	f, err := req.ToFilter()
	if err != nil {
		return jsonServiceError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.service.List(schoolID, f, paging.Limit, paging.Offset)
	if err != nil {
		return jsonServiceError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pagination)
}

// GET /api/a/attendance/:id
func (ctrl *AttendanceController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	row, err := ctrl.service.GetByID(schoolID, id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromAttendanceModel(*row))
}

/* ===================== UPDATE (partial) ===================== */

// PATCH /api/a/attendance/:id — koreksi status dsb.; perubahan key
// (siswa/mapel/tanggal) dicek ulang duplikatnya terhadap baris lain.
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	in, err := req.ToInput()
	if err != nil {
		return jsonServiceError(c, err)
	}
	row, err := ctrl.service.Update(schoolID, id, in)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Absensi berhasil diubah", dto.FromAttendanceModel(*row))
}

/* ===================== DELETE ===================== */

// DELETE /api/a/attendance/:id — hard delete supaya key bisa diabsen ulang.
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.service.Delete(schoolID, id); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"attendance_id": id})
}

/* ===================== STATISTICS (filter bebas) ===================== */

// GET /api/a/attendance/statistics — agregat dengan filter yang sama dengan list.
func (ctrl *AttendanceController) Statistics(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.FilterAttendanceRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}
	f, err := req.ToFilter()
	if err != nil {
		return jsonServiceError(c, err)
	}
	stats, err := ctrl.service.Statistics(schoolID, f)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", stats)
}

/* ===================== shared ===================== */

// jsonServiceError: error service → status via taksonomi; 5xx tidak pernah
// bocorin detail DB ke client, cukup di-log.
func jsonServiceError(c *fiber.Ctx, err error) error {
	status := service.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] attendance: %v", err)
		return helper.JsonError(c, status, "Terjadi kesalahan pada server")
	}
	return helper.JsonError(c, status, err.Error())
}

func validationErrorResponse(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return helper.JsonValidationError(c, fields)
}
