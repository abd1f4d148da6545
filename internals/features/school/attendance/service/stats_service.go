// file: internals/features/school/attendance/service/stats_service.go
package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherSvc "schoolku_backend/internals/features/school/teachers/service"
)

// StatsService: agregasi persentase untuk dashboard. Semua persentase lewat
// roundPct yang sama (2 desimal) supaya angka admin & teacher konsisten.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

/* ===================== CLASS STATISTICS ===================== */

type StudentStatistics struct {
	StudentID            uuid.UUID `gorm:"column:student_id"      json:"student_id"`
	StudentName          string    `gorm:"column:student_name"    json:"student_name"`
	StudentSection       *string   `gorm:"column:student_section" json:"student_section,omitempty"`
	TotalRecords         int64     `gorm:"column:total_records"   json:"total_records"`
	PresentCount         int64     `gorm:"column:present_count"   json:"present_count"`
	AbsentCount          int64     `gorm:"column:absent_count"    json:"absent_count"`
	AttendancePercentage float64   `gorm:"-"                      json:"attendance_percentage"`
}

type ClassStatisticsResult struct {
	ClassSpec              string              `json:"class_spec"`
	Subject                string              `json:"subject"`
	TotalStudents          int                 `json:"total_students"`
	TotalAttendanceRecords int64               `json:"total_attendance_records"`
	TotalPresent           int64               `json:"total_present"`
	TotalAbsent            int64               `json:"total_absent"`
	ClassAverageAttendance float64             `json:"class_average_attendance"`
	Students               []StudentStatistics `json:"students"`
}

// ClassStatistics: per siswa active di scope kelas, LEFT JOIN supaya siswa
// tanpa record tetap muncul dengan persentase 0 (bukan null).
func (s *StatsService) ClassStatistics(
	schoolID uuid.UUID,
	sc teacherSvc.ClassScope,
	subject string,
	from, to *time.Time,
) (*ClassStatisticsResult, error) {
	joinSQL := `LEFT JOIN attendances a ON a.attendance_student_id = st.student_id
		AND a.attendance_school_id = st.student_school_id
		AND a.attendance_subject = ?`
	joinArgs := []any{subject}
	if from != nil {
		joinSQL += " AND a.attendance_date >= ?"
		joinArgs = append(joinArgs, dateOnly(*from))
	}
	if to != nil {
		joinSQL += " AND a.attendance_date <= ?"
		joinArgs = append(joinArgs, dateOnly(*to))
	}

	tx := s.DB.Table("students AS st").
		Joins(joinSQL, joinArgs...).
		Where("st.student_deleted_at IS NULL").
		Scopes(scopeStudentsAliased(schoolID, sc))

	rows := make([]StudentStatistics, 0)
	err := tx.
		Select(`st.student_id, st.student_name, st.student_section,
			COUNT(a.attendance_id) AS total_records,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Present') AS present_count,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Absent')  AS absent_count`).
		Group("st.student_id, st.student_name, st.student_section").
		Order("st.student_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := &ClassStatisticsResult{
		ClassSpec: sc.String(),
		Subject:   subject,
		Students:  rows,
	}
	for i := range rows {
		rows[i].AttendancePercentage = roundPct(rows[i].PresentCount, rows[i].TotalRecords)
		out.TotalAttendanceRecords += rows[i].TotalRecords
		out.TotalPresent += rows[i].PresentCount
		out.TotalAbsent += rows[i].AbsentCount
	}
	out.TotalStudents = len(rows)
	out.ClassAverageAttendance = roundPct(out.TotalPresent, out.TotalAttendanceRecords)
	return out, nil
}

/* ===================== SUBJECT-WISE BREAKDOWN ===================== */

type SubjectStatistics struct {
	Subject              string  `gorm:"column:attendance_subject" json:"subject"`
	TotalRecords         int64   `gorm:"column:total_records"      json:"total_records"`
	PresentCount         int64   `gorm:"column:present_count"      json:"present_count"`
	AbsentCount          int64   `gorm:"column:absent_count"       json:"absent_count"`
	AttendancePercentage float64 `gorm:"-"                         json:"attendance_percentage"`
}

// SubjectWiseBreakdown: record satu siswa digroup per mapel.
func (s *StatsService) SubjectWiseBreakdown(
	schoolID, studentID uuid.UUID,
	from, to *time.Time,
) ([]SubjectStatistics, error) {
	var n int64
	err := s.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrStudentNotFound
	}

	tx := s.DB.Table("attendances AS a").
		Where("a.attendance_school_id = ? AND a.attendance_student_id = ?", schoolID, studentID)
	if from != nil {
		tx = tx.Where("a.attendance_date >= ?", dateOnly(*from))
	}
	if to != nil {
		tx = tx.Where("a.attendance_date <= ?", dateOnly(*to))
	}

	rows := make([]SubjectStatistics, 0)
	err = tx.
		Select(`a.attendance_subject,
			COUNT(*) AS total_records,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Present') AS present_count,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Absent')  AS absent_count`).
		Group("a.attendance_subject").
		Order("a.attendance_subject ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AttendancePercentage = roundPct(rows[i].PresentCount, rows[i].TotalRecords)
	}
	return rows, nil
}

/* ===================== RECENT ACTIVITY ===================== */

type RecentActivityFilter struct {
	StudentID *uuid.UUID
	Subject   string
	Class     string
	Section   string
}

type DailyActivity struct {
	Date                 time.Time `gorm:"column:attendance_date" json:"date"`
	TotalRecords         int64     `gorm:"column:total_records"   json:"total_records"`
	PresentCount         int64     `gorm:"column:present_count"   json:"present_count"`
	AttendancePercentage float64   `gorm:"-"                      json:"attendance_percentage"`
}

// RecentActivity: N tanggal terakhir, group per tanggal. LIMIT dijalankan di
// SQL, bukan fetch-all-lalu-slice, supaya tetap murah saat record membengkak.
func (s *StatsService) RecentActivity(schoolID uuid.UUID, f RecentActivityFilter, limit int) ([]DailyActivity, error) {
	if limit <= 0 {
		limit = 7
	}
	tx := s.DB.Table("attendances AS a").
		Where("a.attendance_school_id = ?", schoolID)
	if f.StudentID != nil {
		tx = tx.Where("a.attendance_student_id = ?", *f.StudentID)
	}
	if f.Subject != "" {
		tx = tx.Where("a.attendance_subject = ?", f.Subject)
	}
	if f.Class != "" || f.Section != "" {
		tx = tx.Joins("JOIN students st ON st.student_id = a.attendance_student_id AND st.student_deleted_at IS NULL")
		if f.Class != "" {
			tx = tx.Where("st.student_class = ?", f.Class)
		}
		if f.Section != "" {
			tx = tx.Where("st.student_section = ?", f.Section)
		}
	}

	rows := make([]DailyActivity, 0, limit)
	err := tx.
		Select(`a.attendance_date,
			COUNT(*) AS total_records,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Present') AS present_count`).
		Group("a.attendance_date").
		Order("a.attendance_date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AttendancePercentage = roundPct(rows[i].PresentCount, rows[i].TotalRecords)
	}
	return rows, nil
}

/* ===================== internal ===================== */

// scopeStudentsAliased: versi ScopeStudents untuk query beralias "st".
func scopeStudentsAliased(schoolID uuid.UUID, sc teacherSvc.ClassScope) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("st.student_school_id = ?", schoolID).
			Where("st.student_class = ?", sc.Class).
			Where("(st.student_status = ? OR st.student_status IS NULL)", studentModel.StudentStatusActive)
		if sc.Section != "" {
			tx = tx.Where("st.student_section = ?", sc.Section)
		}
		return tx
	}
}

// roundPct: round(present/total*100, 2); total 0 = 0, bukan NaN.
func roundPct(present, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}
