// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"

	"schoolku_backend/internals/configs"
	authMw "schoolku_backend/internals/middlewares/auth_school"
	featureMw "schoolku_backend/internals/middlewares/features"
)

// SetupRoutes memasang seluruh route aplikasi dalam tiga grup:
//
//	/api/a → admin sekolah (CRUD siswa/guru, akses penuh absensi + statistik)
//	/api/t → guru (absen per siswa, bulk per kelas, statistik kelas dalam scope)
//	/api/u → siswa (record & rekap milik sendiri)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ====== ADMIN ======
	admin := api.Group("/a", jwt, featureMw.IsSchoolAdmin())
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)

	// ====== TEACHER ======
	teacher := api.Group("/t", jwt, featureMw.IsSchoolTeacher())
	teacherRoute.TeacherSelfRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)

	// ====== STUDENT ======
	student := api.Group("/u", jwt, featureMw.IsSchoolStudent())
	attendanceRoute.AttendanceUserRoutes(student, db)
}
