package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
)

// ValidAttendanceStatus: status harus persis "Present" atau "Absent".
func ValidAttendanceStatus(s string) bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusAbsent
}

// AttendanceModel: satu fakta kehadiran per (siswa, mapel, tanggal, sekolah).
// Unique index adalah guard utama duplikasi — aman terhadap bulk yang berjalan
// bersamaan, bukan sekadar check-then-insert di aplikasi.
// Hard delete (tanpa DeletedAt): baris yang dihapus harus membebaskan key
// supaya bisa diabsen ulang.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date_school;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceSubject   string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_attendance_student_subject_date_school;column:attendance_subject" json:"attendance_subject"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_subject_date_school;column:attendance_date" json:"attendance_date"`
	AttendanceSchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date_school;index;column:attendance_school_id" json:"attendance_school_id"`

	AttendanceStatus    string    `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceTeacherID uuid.UUID `gorm:"type:uuid;not null;column:attendance_teacher_id" json:"attendance_teacher_id"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
