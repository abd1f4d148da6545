// file: internals/features/school/attendance/controller/stats_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/service"
	teacherSvc "schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StatsController struct {
	DB     *gorm.DB
	stats  *service.StatsService
	scopes *teacherSvc.TeacherScopeService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		DB:     db,
		stats:  service.NewStatsService(db),
		scopes: teacherSvc.NewTeacherScopeService(db),
	}
}

/* ===================== CLASS STATISTICS ===================== */

// GET /api/a/attendance/class-statistics?class=8A&subject=Science&start_date=&end_date=
func (ctrl *StatsController) AdminClassStatistics(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.classStatistics(c, schoolID, nil)
}

// GET /api/t/attendance/class-statistics — kelas harus masuk scope guru.
func (ctrl *StatsController) TeacherClassStatistics(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.classStatistics(c, schoolID, &teacherID)
}

func (ctrl *StatsController) classStatistics(c *fiber.Ctx, schoolID uuid.UUID, teacherID *uuid.UUID) error {
	classSpec := c.Query("class")
	subject := c.Query("subject")
	if classSpec == "" || subject == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"class":   {"required"},
			"subject": {"required"},
		})
	}

	sc, err := teacherSvc.ParseClassSpec(classSpec)
	if err != nil {
		return jsonServiceError(c, err)
	}

	if teacherID != nil {
		teacher, err := ctrl.scopes.GetTeacher(schoolID, *teacherID)
		if err != nil {
			return jsonServiceError(c, err)
		}
		if !teacherSvc.CanAccess(ctrl.scopes.ScopesFor(teacher), sc) {
			return jsonServiceError(c, service.ErrNotAuthorized)
		}
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		return jsonServiceError(c, err)
	}
	res, err := ctrl.stats.ClassStatistics(schoolID, sc, subject, from, to)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", res)
}

/* ===================== SUBJECT-WISE BREAKDOWN ===================== */

// GET /api/u/attendance/subject-breakdown — siswa lihat rekap mapelnya sendiri.
func (ctrl *StatsController) StudentSubjectBreakdown(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.subjectBreakdown(c, schoolID, studentID)
}

// GET /api/a/attendance/subject-breakdown/:student_id
func (ctrl *StatsController) AdminSubjectBreakdown(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
	}
	return ctrl.subjectBreakdown(c, schoolID, studentID)
}

func (ctrl *StatsController) subjectBreakdown(c *fiber.Ctx, schoolID, studentID uuid.UUID) error {
	from, to, err := queryDateRange(c)
	if err != nil {
		return jsonServiceError(c, err)
	}
	rows, err := ctrl.stats.SubjectWiseBreakdown(schoolID, studentID, from, to)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

/* ===================== RECENT ACTIVITY ===================== */

// GET /api/a/attendance/recent-activity?limit=7&class=&section=&subject=&student_id=
func (ctrl *StatsController) AdminRecentActivity(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	f := service.RecentActivityFilter{
		Subject: c.Query("subject"),
		Class:   c.Query("class"),
		Section: c.Query("section"),
	}
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
		}
		f.StudentID = &id
	}
	return ctrl.recentActivity(c, schoolID, f)
}

// GET /api/u/attendance/recent-activity — tren kehadiran siswa sendiri.
func (ctrl *StatsController) StudentRecentActivity(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	f := service.RecentActivityFilter{
		StudentID: &studentID,
		Subject:   c.Query("subject"),
	}
	return ctrl.recentActivity(c, schoolID, f)
}

func (ctrl *StatsController) recentActivity(c *fiber.Ctx, schoolID uuid.UUID, f service.RecentActivityFilter) error {
	limit := c.QueryInt("limit", 7)
	rows, err := ctrl.stats.RecentActivity(schoolID, f, limit)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

/* ===================== shared ===================== */

func queryDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, err := helper.ParseDateOnly(raw)
		if err != nil {
			return nil, nil, service.ErrInvalidDate
		}
		from = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := helper.ParseDateOnly(raw)
		if err != nil {
			return nil, nil, service.ErrInvalidDate
		}
		to = &t
	}
	return from, to, nil
}
