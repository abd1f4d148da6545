package features

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// IsSchoolAdmin: hanya admin/owner sekolah yang boleh lewat.
func IsSchoolAdmin() fiber.Handler {
	return requireRole(constants.AdminAndAbove, constants.RoleErrorAdmin("admin sekolah"))
}

// IsSchoolTeacher: teacher ke atas. Guru juga wajib punya teacher_id di token.
func IsSchoolTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !hasAnyRole(c, constants.TeacherAndAbove) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("absensi"))
		}
		return c.Next()
	}
}

// IsSchoolStudent: khusus endpoint self-service siswa.
func IsSchoolStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetStudentIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent("absensi siswa"))
		}
		return c.Next()
	}
}

func requireRole(allowed []string, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !hasAnyRole(c, allowed) {
			return fiber.NewError(fiber.StatusForbidden, msg)
		}
		return c.Next()
	}
}

func hasAnyRole(c *fiber.Ctx, allowed []string) bool {
	roles := helperAuth.GetRolesFromToken(c)
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}
