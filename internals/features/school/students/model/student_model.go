package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	StudentName string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`

	// class "8" + section "A" (section kosong = belum punya section)
	StudentClass   string  `gorm:"type:varchar(8);not null;index;column:student_class"  json:"student_class"`
	StudentSection *string `gorm:"type:varchar(2);column:student_section"               json:"student_section,omitempty"`

	// NULL dianggap active (data lama)
	StudentStatus *string `gorm:"type:varchar(16);default:'active';column:student_status" json:"student_status,omitempty"`

	// blob bebas: kontak wali, alamat, dsb.
	StudentMeta datatypes.JSONMap `gorm:"column:student_meta" json:"student_meta,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// IsActive: hanya siswa active (atau status NULL) yang boleh diabsen.
func (m StudentModel) IsActive() bool {
	return m.StudentStatus == nil || *m.StudentStatus == StudentStatusActive
}
