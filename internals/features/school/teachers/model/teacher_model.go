package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_school_id" json:"teacher_school_id"`

	TeacherName string `gorm:"type:varchar(120);not null;column:teacher_name" json:"teacher_name"`

	// CSV class spec, mis. "8,9A": "8" = semua section kelas 8, "9A" = hanya 9A.
	// Sumber otorisasi satu-satunya untuk kelas yang boleh diabsen guru ini.
	TeacherClassAssigned string `gorm:"type:text;not null;default:'';column:teacher_class_assigned" json:"teacher_class_assigned"`

	TeacherSubjects pq.StringArray `gorm:"type:text[];column:teacher_subjects" json:"teacher_subjects,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time     `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"          json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
