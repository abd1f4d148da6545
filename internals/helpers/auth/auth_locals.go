// file: internals/helpers/auth/auth_locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID    = "user_id"    // string UUID
	LocSchoolID  = "school_id"  // string UUID — tenant aktif
	LocTeacherID = "teacher_id" // string UUID
	LocStudentID = "student_id" // string UUID
	LocRole      = "role"       // legacy single role
	LocRoles     = "roles"      // []string
)

/* ============================================
   Accessors — konteks auth per request,
   tidak pernah baca state global/session.
   ============================================ */

// GetSchoolIDFromToken: tenant wajib ada di semua endpoint scoped.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocSchoolID, "School ID tidak ditemukan di token")
}

func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocTeacherID, "Teacher ID tidak ditemukan di token")
}

func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocStudentID, "Student ID tidak ditemukan di token")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID, "User ID tidak ditemukan di token")
}

func GetRolesFromToken(c *fiber.Ctx) []string {
	out := make([]string, 0, 2)
	if v, ok := c.Locals(LocRoles).([]string); ok {
		out = append(out, v...)
	}
	if r, ok := c.Locals(LocRole).(string); ok {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func uuidLocal(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	return id, nil
}
