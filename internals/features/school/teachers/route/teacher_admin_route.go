// file: internals/features/school/teachers/route/teacher_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/teachers/controller"
)

// TeacherAdminRoutes: CRUD guru untuk grup admin (/api/a).
func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Post("/", ctrl.Create)
	teachers.Get("/", ctrl.List)
	teachers.Get("/:id", ctrl.GetByID)
	teachers.Patch("/:id", ctrl.Update)
	teachers.Delete("/:id", ctrl.Delete)
}

// TeacherSelfRoutes: endpoint profil guru untuk grup teacher (/api/t).
func TeacherSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)
	r.Get("/teachers/me", ctrl.Me)
}
