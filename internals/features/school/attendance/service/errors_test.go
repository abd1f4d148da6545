package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	teacherSvc "schoolku_backend/internals/features/school/teachers/service"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", ErrDuplicateAttendance, fiber.StatusConflict},
		{"already marked", ErrAlreadyMarkedToday, fiber.StatusConflict},
		{"already marked wrapped", alreadyMarkedError("Science", "2026-08-31"), fiber.StatusConflict},
		{"student not found", ErrStudentNotFound, fiber.StatusNotFound},
		{"teacher not found", ErrTeacherNotFound, fiber.StatusNotFound},
		{"attendance not found", ErrAttendanceNotFound, fiber.StatusNotFound},
		{"teacher svc not found", teacherSvc.ErrTeacherNotFound, fiber.StatusNotFound},
		{"not authorized", ErrNotAuthorized, fiber.StatusForbidden},
		{"invalid status", ErrInvalidStatus, fiber.StatusBadRequest},
		{"invalid date", ErrInvalidDate, fiber.StatusBadRequest},
		{"empty batch", ErrEmptyBatch, fiber.StatusBadRequest},
		{"no fields", ErrNoFieldsToUpdate, fiber.StatusBadRequest},
		{"invalid class spec", teacherSvc.ErrInvalidClassSpec, fiber.StatusBadRequest},
		{"missing fields", &MissingFieldsError{Fields: []string{"student_id"}}, fiber.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("context: %w", ErrStudentNotFound), fiber.StatusNotFound},
		{"unknown", errors.New("koneksi putus"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestAlreadyMarkedErrorMessage(t *testing.T) {
	err := alreadyMarkedError("Science", "2026-08-31")
	if !errors.Is(err, ErrAlreadyMarkedToday) {
		t.Fatal("harus tetap errors.Is ErrAlreadyMarkedToday")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Science") || !strings.Contains(msg, "2026-08-31") {
		t.Errorf("pesan harus menyebut mapel dan tanggal, dapat: %q", msg)
	}
}

func TestMissingFieldsErrorMessage(t *testing.T) {
	err := &MissingFieldsError{Fields: []string{"student_id", "subject"}}
	msg := err.Error()
	if !strings.Contains(msg, "student_id") || !strings.Contains(msg, "subject") {
		t.Errorf("pesan harus menyebut semua field kosong, dapat: %q", msg)
	}
}
