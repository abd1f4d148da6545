// file: internals/features/school/attendance/route/attendance_teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/controller"
	"schoolku_backend/internals/middlewares"
)

// AttendanceTeacherRoutes: absen per siswa + bulk per kelas (/api/t).
// Bulk dilindungi rate limiter terpisah karena satu request bisa ratusan insert.
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	bulk := controller.NewBulkAttendanceController(db)
	stats := controller.NewStatsController(db)

	att := r.Group("/attendance")
	att.Post("/", ctrl.Create)
	att.Post("/bulk", middlewares.BulkAttendanceRateLimiter(), bulk.MarkClass)
	att.Get("/", ctrl.TeacherList)
	att.Get("/class-statistics", stats.TeacherClassStatistics)
}
