// file: internals/features/school/attendance/service/attendance_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
)

// AttendanceService: record store satu-baris. Guard duplikasi final ada di
// unique index (student, subject, date, school) — insert langsung, pelanggaran
// constraint diterjemahkan ke ErrDuplicateAttendance. Retry create yang gagal
// duplicate akan gagal lagi dengan error yang sama, tidak pernah double-write.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

/* ===================== CREATE ===================== */

type CreateAttendanceInput struct {
	SchoolID  uuid.UUID
	StudentID uuid.UUID
	TeacherID uuid.UUID
	Subject   string
	Date      time.Time
	Status    string
}

func (s *AttendanceService) Create(in CreateAttendanceInput) (*model.AttendanceModel, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if err := s.ensureStudent(in.SchoolID, in.StudentID); err != nil {
		return nil, err
	}
	if err := s.ensureTeacher(in.SchoolID, in.TeacherID); err != nil {
		return nil, err
	}

	row := &model.AttendanceModel{
		AttendanceSchoolID:  in.SchoolID,
		AttendanceStudentID: in.StudentID,
		AttendanceTeacherID: in.TeacherID,
		AttendanceSubject:   in.Subject,
		AttendanceDate:      dateOnly(in.Date),
		AttendanceStatus:    in.Status,
	}
	if err := s.DB.Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAttendance
		}
		return nil, err
	}
	return row, nil
}

func validateCreate(in CreateAttendanceInput) error {
	missing := make([]string, 0, 4)
	if in.StudentID == uuid.Nil {
		missing = append(missing, "student_id")
	}
	if in.Subject == "" {
		missing = append(missing, "subject")
	}
	if in.Date.IsZero() {
		missing = append(missing, "date")
	}
	if in.Status == "" {
		missing = append(missing, "status")
	}
	if in.TeacherID == uuid.Nil {
		missing = append(missing, "teacher_id")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if !model.ValidAttendanceStatus(in.Status) {
		return ErrInvalidStatus
	}
	return nil
}

/* ===================== READ (filters) ===================== */

// ListFilter: semua opsional, digabung AND.
type ListFilter struct {
	StudentID *uuid.UUID
	TeacherID *uuid.UUID
	Subject   string // substring match
	Status    string
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	Class     string
	Section   string
}

// AttendanceRow: baris attendance + display field hasil join.
type AttendanceRow struct {
	AttendanceID        uuid.UUID  `gorm:"column:attendance_id"         json:"attendance_id"`
	AttendanceStudentID uuid.UUID  `gorm:"column:attendance_student_id" json:"attendance_student_id"`
	AttendanceSubject   string     `gorm:"column:attendance_subject"    json:"attendance_subject"`
	AttendanceDate      time.Time  `gorm:"column:attendance_date"       json:"attendance_date"`
	AttendanceStatus    string     `gorm:"column:attendance_status"     json:"attendance_status"`
	AttendanceTeacherID uuid.UUID  `gorm:"column:attendance_teacher_id" json:"attendance_teacher_id"`
	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at" json:"attendance_updated_at,omitempty"`

	StudentName    string  `gorm:"column:student_name"    json:"student_name"`
	StudentClass   string  `gorm:"column:student_class"   json:"student_class"`
	StudentSection *string `gorm:"column:student_section" json:"student_section,omitempty"`
	TeacherName    *string `gorm:"column:teacher_name"    json:"teacher_name,omitempty"`
}

func (s *AttendanceService) List(schoolID uuid.UUID, f ListFilter, limit, offset int) ([]AttendanceRow, int64, error) {
	var total int64
	if err := s.buildListQuery(schoolID, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]AttendanceRow, 0, limit)
	err := s.buildListQuery(schoolID, f).
		Select(`a.attendance_id, a.attendance_student_id, a.attendance_subject,
			a.attendance_date, a.attendance_status, a.attendance_teacher_id,
			a.attendance_created_at, a.attendance_updated_at,
			st.student_name, st.student_class, st.student_section, t.teacher_name`).
		Order("a.attendance_date DESC, st.student_name ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *AttendanceService) GetByID(schoolID, id uuid.UUID) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := s.DB.
		Where("attendance_id = ? AND attendance_school_id = ?", id, schoolID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return &row, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAttendanceInput struct {
	StudentID *uuid.UUID
	TeacherID *uuid.UUID
	Subject   *string
	Date      *time.Time
	Status    *string
}

func (s *AttendanceService) Update(schoolID, id uuid.UUID, in UpdateAttendanceInput) (*model.AttendanceModel, error) {
	updates := map[string]any{}
	if in.StudentID != nil {
		updates["attendance_student_id"] = *in.StudentID
	}
	if in.TeacherID != nil {
		updates["attendance_teacher_id"] = *in.TeacherID
	}
	if in.Subject != nil {
		updates["attendance_subject"] = *in.Subject
	}
	if in.Date != nil {
		updates["attendance_date"] = dateOnly(*in.Date)
	}
	if in.Status != nil {
		updates["attendance_status"] = *in.Status
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	if in.Status != nil && !model.ValidAttendanceStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.GetByID(schoolID, id)
	if err != nil {
		return nil, err
	}
	if in.StudentID != nil && *in.StudentID != existing.AttendanceStudentID {
		if err := s.ensureStudent(schoolID, *in.StudentID); err != nil {
			return nil, err
		}
	}
	if in.TeacherID != nil && *in.TeacherID != existing.AttendanceTeacherID {
		if err := s.ensureTeacher(schoolID, *in.TeacherID); err != nil {
			return nil, err
		}
	}

	// Kalau key (student, subject, date) berubah, cek duplikat terhadap baris LAIN.
	newStudent := existing.AttendanceStudentID
	if in.StudentID != nil {
		newStudent = *in.StudentID
	}
	newSubject := existing.AttendanceSubject
	if in.Subject != nil {
		newSubject = *in.Subject
	}
	newDate := existing.AttendanceDate
	if in.Date != nil {
		newDate = dateOnly(*in.Date)
	}
	keyChanged := newStudent != existing.AttendanceStudentID ||
		newSubject != existing.AttendanceSubject ||
		!newDate.Equal(existing.AttendanceDate)
	if keyChanged {
		var n int64
		err := s.DB.Model(&model.AttendanceModel{}).
			Where("attendance_school_id = ? AND attendance_student_id = ? AND attendance_subject = ? AND attendance_date = ?",
				schoolID, newStudent, newSubject, newDate).
			Where("attendance_id <> ?", id).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrDuplicateAttendance
		}
	}

	res := s.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ? AND attendance_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			// backstop: race antara cek di atas dan update
			return nil, ErrDuplicateAttendance
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAttendanceNotFound
	}
	return s.GetByID(schoolID, id)
}

/* ===================== DELETE ===================== */

func (s *AttendanceService) Delete(schoolID, id uuid.UUID) error {
	res := s.DB.
		Where("attendance_id = ? AND attendance_school_id = ?", id, schoolID).
		Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

/* ===================== STATISTICS ===================== */

type AttendanceStatistics struct {
	TotalRecords         int64   `json:"total_records"`
	PresentCount         int64   `json:"present_count"`
	AbsentCount          int64   `json:"absent_count"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// Statistics: agregat dengan filter yang sama persis dengan List.
func (s *AttendanceService) Statistics(schoolID uuid.UUID, f ListFilter) (*AttendanceStatistics, error) {
	var agg struct {
		Total   int64
		Present int64
		Absent  int64
	}
	err := s.buildListQuery(schoolID, f).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Present') AS present,
			COUNT(*) FILTER (WHERE a.attendance_status = 'Absent')  AS absent`).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &AttendanceStatistics{
		TotalRecords:         agg.Total,
		PresentCount:         agg.Present,
		AbsentCount:          agg.Absent,
		AttendancePercentage: roundPct(agg.Present, agg.Total),
	}, nil
}

/* ===================== internal ===================== */

func (s *AttendanceService) buildListQuery(schoolID uuid.UUID, f ListFilter) *gorm.DB {
	tx := s.DB.Table("attendances AS a").
		Joins("JOIN students st ON st.student_id = a.attendance_student_id AND st.student_deleted_at IS NULL").
		Joins("LEFT JOIN teachers t ON t.teacher_id = a.attendance_teacher_id AND t.teacher_deleted_at IS NULL").
		Where("a.attendance_school_id = ?", schoolID)

	if f.StudentID != nil {
		tx = tx.Where("a.attendance_student_id = ?", *f.StudentID)
	}
	if f.TeacherID != nil {
		tx = tx.Where("a.attendance_teacher_id = ?", *f.TeacherID)
	}
	if f.Subject != "" {
		tx = tx.Where("a.attendance_subject ILIKE ?", "%"+f.Subject+"%")
	}
	if f.Status != "" {
		tx = tx.Where("a.attendance_status = ?", f.Status)
	}
	if f.Date != nil {
		tx = tx.Where("a.attendance_date = ?", dateOnly(*f.Date))
	}
	if f.StartDate != nil {
		tx = tx.Where("a.attendance_date >= ?", dateOnly(*f.StartDate))
	}
	if f.EndDate != nil {
		tx = tx.Where("a.attendance_date <= ?", dateOnly(*f.EndDate))
	}
	if f.Class != "" {
		tx = tx.Where("st.student_class = ?", f.Class)
	}
	if f.Section != "" {
		tx = tx.Where("st.student_section = ?", f.Section)
	}
	return tx
}

func (s *AttendanceService) ensureStudent(schoolID, studentID uuid.UUID) error {
	var n int64
	err := s.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		Where("(student_status = ? OR student_status IS NULL)", studentModel.StudentStatusActive).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (s *AttendanceService) ensureTeacher(schoolID, teacherID uuid.UUID) error {
	var n int64
	err := s.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTeacherNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
