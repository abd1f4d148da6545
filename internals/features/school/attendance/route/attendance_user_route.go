// file: internals/features/school/attendance/route/attendance_user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/controller"
)

// AttendanceUserRoutes: siswa hanya bisa melihat record miliknya sendiri (/api/u).
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	stats := controller.NewStatsController(db)

	att := r.Group("/attendance")
	att.Get("/", ctrl.StudentList)
	att.Get("/subject-breakdown", stats.StudentSubjectBreakdown)
	att.Get("/recent-activity", stats.StudentRecentActivity)
}
