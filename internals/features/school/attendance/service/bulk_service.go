// file: internals/features/school/attendance/service/bulk_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/model"
	teacherSvc "schoolku_backend/internals/features/school/teachers/service"
)

// BulkAttendanceService: absensi satu kelas sekaligus, best-effort per baris.
// Satu baris gagal (duplikat, siswa invalid, dsb.) tidak membatalkan sisanya.
type BulkAttendanceService struct {
	DB     *gorm.DB
	store  *AttendanceService
	scopes *teacherSvc.TeacherScopeService
}

func NewBulkAttendanceService(db *gorm.DB) *BulkAttendanceService {
	return &BulkAttendanceService{
		DB:     db,
		store:  NewAttendanceService(db),
		scopes: teacherSvc.NewTeacherScopeService(db),
	}
}

type BulkRow struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
}

type BulkRowError struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
}

type BulkResult struct {
	SuccessfulCount   int                      `json:"successful_count"`
	ErrorCount        int                      `json:"error_count"`
	SuccessfulRecords []*model.AttendanceModel `json:"successful_records"`
	FailedRecords     []BulkRowError           `json:"failed_records"`
}

// MarkClass: otorisasi class spec terhadap teacher_class_assigned, fail-fast
// kalau kelas+mapel+tanggal itu sudah pernah diisi, lalu apply per baris.
func (s *BulkAttendanceService) MarkClass(
	schoolID, teacherID uuid.UUID,
	classSpec, subject string,
	date time.Time,
	rows []BulkRow,
) (*BulkResult, error) {
	// Batch kosong ditolak sebelum otorisasi/DB apa pun.
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}

	teacher, err := s.scopes.GetTeacher(schoolID, teacherID)
	if err != nil {
		return nil, err
	}
	requested, err := teacherSvc.ParseClassSpec(classSpec)
	if err != nil {
		return nil, err
	}
	if !teacherSvc.CanAccess(s.scopes.ScopesFor(teacher), requested) {
		return nil, ErrNotAuthorized
	}

	// Pre-check: ada baris attendance untuk roster kelas ini + mapel + tanggal?
	// Guard otoritatifnya tetap unique index per baris; ini hanya supaya kelas
	// yang sudah selesai diabsen tidak ke-mark ulang sebagian.
	marked, err := s.classAlreadyMarked(schoolID, requested, subject, date)
	if err != nil {
		return nil, err
	}
	if marked {
		return nil, alreadyMarkedError(subject, dateOnly(date).Format("2006-01-02"))
	}

	res := applyBatch(rows, func(r BulkRow) (*model.AttendanceModel, error) {
		return s.store.Create(CreateAttendanceInput{
			SchoolID:  schoolID,
			StudentID: r.StudentID,
			TeacherID: teacherID,
			Subject:   subject,
			Date:      date,
			Status:    r.Status,
		})
	})
	return res, nil
}

func (s *BulkAttendanceService) classAlreadyMarked(
	schoolID uuid.UUID, sc teacherSvc.ClassScope, subject string, date time.Time,
) (bool, error) {
	var n int64
	tx := s.DB.Table("attendances AS a").
		Joins("JOIN students st ON st.student_id = a.attendance_student_id AND st.student_deleted_at IS NULL").
		Where("a.attendance_school_id = ?", schoolID).
		Where("st.student_class = ?", sc.Class).
		Where("a.attendance_subject = ?", subject).
		Where("a.attendance_date = ?", dateOnly(date))
	if sc.Section != "" {
		tx = tx.Where("st.student_section = ?", sc.Section)
	}
	if err := tx.Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// applyBatch: loop sekuensial, kumpulkan sukses & gagal terpisah.
// Dipisah sebagai fungsi murni supaya semantik partial-failure gampang dites.
func applyBatch(rows []BulkRow, create func(BulkRow) (*model.AttendanceModel, error)) *BulkResult {
	res := &BulkResult{
		SuccessfulRecords: make([]*model.AttendanceModel, 0, len(rows)),
		FailedRecords:     make([]BulkRowError, 0),
	}
	for _, r := range rows {
		created, err := create(r)
		if err != nil {
			res.ErrorCount++
			res.FailedRecords = append(res.FailedRecords, BulkRowError{
				StudentID: r.StudentID,
				Status:    r.Status,
				Reason:    err.Error(),
			})
			continue
		}
		res.SuccessfulCount++
		res.SuccessfulRecords = append(res.SuccessfulRecords, created)
	}
	return res
}
