// file: internals/features/school/attendance/route/attendance_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/controller"
)

// AttendanceAdminRoutes: akses penuh admin atas record + statistik (/api/a).
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	stats := controller.NewStatsController(db)

	att := r.Group("/attendance")
	att.Post("/", ctrl.AdminCreate)
	att.Get("/", ctrl.List)
	att.Get("/statistics", ctrl.Statistics)
	att.Get("/class-statistics", stats.AdminClassStatistics)
	att.Get("/subject-breakdown/:student_id", stats.AdminSubjectBreakdown)
	att.Get("/recent-activity", stats.AdminRecentActivity)
	att.Get("/:id", ctrl.GetByID)
	att.Patch("/:id", ctrl.Update)
	att.Delete("/:id", ctrl.Delete)
}
