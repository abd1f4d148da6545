// file: internals/features/school/students/route/student_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes: CRUD siswa, hanya untuk grup admin (/api/a).
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
