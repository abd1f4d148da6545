// file: internals/features/school/attendance/service/errors.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	teacherSvc "schoolku_backend/internals/features/school/teachers/service"
)

// Taksonomi error attendance. Caller branch pakai errors.Is/As,
// BUKAN substring message — message bebas berubah, identitas tidak.
var (
	// Conflict (kondisi bisnis yang diharapkan, bukan bug)
	ErrDuplicateAttendance = errors.New("absensi untuk siswa, mapel, dan tanggal tersebut sudah tercatat")
	ErrAlreadyMarkedToday  = errors.New("absensi kelas untuk mapel & tanggal tersebut sudah pernah diisi")

	// Not found (entity tidak ada / beda tenant)
	ErrStudentNotFound    = errors.New("student tidak ditemukan")
	ErrTeacherNotFound    = errors.New("teacher tidak ditemukan")
	ErrAttendanceNotFound = errors.New("data absensi tidak ditemukan")

	// Authorization
	ErrNotAuthorized = errors.New("guru tidak punya akses ke kelas tersebut")

	// Validation
	ErrInvalidStatus    = errors.New("status harus 'Present' atau 'Absent'")
	ErrInvalidDate      = errors.New("tanggal tidak valid, format: YYYY-MM-DD")
	ErrEmptyBatch       = errors.New("attendance_records kosong")
	ErrNoFieldsToUpdate = errors.New("tidak ada field yang diubah")
)

// MissingFieldsError menyebut field wajib yang kosong.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "field wajib belum diisi: " + strings.Join(e.Fields, ", ")
}

// alreadyMarkedError membungkus ErrAlreadyMarkedToday sambil menyebut
// mapel + tanggal supaya pesan ke user actionable.
func alreadyMarkedError(subject, date string) error {
	return fmt.Errorf("absensi %s tanggal %s sudah pernah diisi: %w", subject, date, ErrAlreadyMarkedToday)
}

// HTTPStatus memetakan error service ke status code.
// Error tak dikenal = internal (detail di-log, pesan generic ke client).
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateAttendance),
		errors.Is(err, ErrAlreadyMarkedToday):
		return fiber.StatusConflict
	case errors.Is(err, ErrStudentNotFound),
		errors.Is(err, ErrTeacherNotFound),
		errors.Is(err, ErrAttendanceNotFound),
		errors.Is(err, teacherSvc.ErrTeacherNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrNoFieldsToUpdate),
		errors.Is(err, teacherSvc.ErrInvalidClassSpec),
		isMissingFields(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func isMissingFields(err error) bool {
	var mf *MissingFieldsError
	return errors.As(err, &mf)
}
