// file: internals/features/school/teachers/service/class_scope.go
package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/school/students/model"
)

// ErrInvalidClassSpec: class spec tidak cocok pola "angka [+ 1 huruf kapital]".
// Fallback lama (string bebas dicocokkan langsung ke tabel students) sengaja
// tidak dibawa — satu semantik otorisasi saja.
var ErrInvalidClassSpec = errors.New("class spec tidak valid, format: angka kelas + opsional satu huruf section (mis. 8, 8A, 12B)")

var classSpecRe = regexp.MustCompile(`^([0-9]+)([A-Z])?$`)

// ClassScope: satu token otorisasi hasil parse.
// Section kosong = semua section pada kelas tersebut.
type ClassScope struct {
	Class   string
	Section string
}

func (s ClassScope) String() string { return s.Class + s.Section }

// ParseClassSpec parse satu spec ("8", "8A"). Dipakai untuk requested class
// di bulk attendance & statistik — spec tak valid langsung ditolak.
func ParseClassSpec(raw string) (ClassScope, error) {
	m := classSpecRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return ClassScope{}, ErrInvalidClassSpec
	}
	return ClassScope{Class: m[1], Section: m[2]}, nil
}

// ParseAssignedScopes parse CSV teacher_class_assigned ("8,9A") menjadi set scope.
// Token yang tidak cocok pola diabaikan (data lama), tidak memberi akses apa pun.
// Parser SATU-SATUNYA untuk string ini — jangan duplikasi regex di call site lain.
func ParseAssignedScopes(csv string) []ClassScope {
	parts := strings.Split(csv, ",")
	out := make([]ClassScope, 0, len(parts))
	for _, p := range parts {
		if sc, err := ParseClassSpec(p); err == nil {
			out = append(out, sc)
		}
	}
	return out
}

// CanAccess: token kelas-saja ("8") mengizinkan semua section kelas itu;
// token kelas+section hanya section itu. Tidak ada match = tolak.
func CanAccess(scopes []ClassScope, requested ClassScope) bool {
	for _, sc := range scopes {
		if sc.Class != requested.Class {
			continue
		}
		if sc.Section == "" || sc.Section == requested.Section {
			return true
		}
	}
	return false
}

// ScopeStudents: filter siswa sesuai scope + tenant, hanya active (atau NULL).
func ScopeStudents(schoolID uuid.UUID, sc ClassScope) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("student_school_id = ?", schoolID).
			Where("student_class = ?", sc.Class).
			Where("(student_status = ? OR student_status IS NULL)", studentModel.StudentStatusActive)
		if sc.Section != "" {
			tx = tx.Where("student_section = ?", sc.Section)
		}
		return tx
	}
}
