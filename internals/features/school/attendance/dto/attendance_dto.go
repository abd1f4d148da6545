// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). attendance_teacher_id hanya dipakai route admin;
// di route teacher selalu dioverride dari token.
type CreateAttendanceRequest struct {
	AttendanceStudentID uuid.UUID  `json:"attendance_student_id" validate:"required"`
	AttendanceSubject   string     `json:"attendance_subject"    validate:"required,max=80"`
	AttendanceDate      string     `json:"attendance_date"       validate:"required"`
	AttendanceStatus    string     `json:"attendance_status"     validate:"required,oneof=Present Absent"`
	AttendanceTeacherID *uuid.UUID `json:"attendance_teacher_id" validate:"omitempty"`
}

func (r CreateAttendanceRequest) ToInput(schoolID, teacherID uuid.UUID) (service.CreateAttendanceInput, error) {
	date, err := helper.ParseDateOnly(r.AttendanceDate)
	if err != nil {
		return service.CreateAttendanceInput{}, service.ErrInvalidDate
	}
	return service.CreateAttendanceInput{
		SchoolID:  schoolID,
		StudentID: r.AttendanceStudentID,
		TeacherID: teacherID,
		Subject:   r.AttendanceSubject,
		Date:      date,
		Status:    r.AttendanceStatus,
	}, nil
}

// Update (partial JSON)
type UpdateAttendanceRequest struct {
	AttendanceStudentID *uuid.UUID `json:"attendance_student_id" validate:"omitempty"`
	AttendanceSubject   *string    `json:"attendance_subject"    validate:"omitempty,max=80"`
	AttendanceDate      *string    `json:"attendance_date"       validate:"omitempty"`
	AttendanceStatus    *string    `json:"attendance_status"     validate:"omitempty,oneof=Present Absent"`
	AttendanceTeacherID *uuid.UUID `json:"attendance_teacher_id" validate:"omitempty"`
}

func (r UpdateAttendanceRequest) ToInput() (service.UpdateAttendanceInput, error) {
	in := service.UpdateAttendanceInput{
		StudentID: r.AttendanceStudentID,
		TeacherID: r.AttendanceTeacherID,
		Subject:   r.AttendanceSubject,
		Status:    r.AttendanceStatus,
	}
	if r.AttendanceDate != nil {
		date, err := helper.ParseDateOnly(*r.AttendanceDate)
		if err != nil {
			return service.UpdateAttendanceInput{}, service.ErrInvalidDate
		}
		in.Date = &date
	}
	return in, nil
}

// Filter / List (query) — semua opsional, digabung AND.
type FilterAttendanceRequest struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	TeacherID *uuid.UUID `query:"teacher_id" validate:"omitempty"`
	Subject   string     `query:"subject"    validate:"omitempty,max=80"`
	Status    string     `query:"status"     validate:"omitempty,oneof=Present Absent"`
	Date      string     `query:"date"       validate:"omitempty"`
	StartDate string     `query:"start_date" validate:"omitempty"`
	EndDate   string     `query:"end_date"   validate:"omitempty"`
	Class     string     `query:"class"      validate:"omitempty,max=8"`
	Section   string     `query:"section"    validate:"omitempty,max=2"`
}

func (r FilterAttendanceRequest) ToFilter() (service.ListFilter, error) {
	f := service.ListFilter{
		StudentID: r.StudentID,
		TeacherID: r.TeacherID,
		Subject:   r.Subject,
		Status:    r.Status,
		Class:     r.Class,
		Section:   r.Section,
	}
	var err error
	if f.Date, err = parseDatePtr(r.Date); err != nil {
		return service.ListFilter{}, err
	}
	if f.StartDate, err = parseDatePtr(r.StartDate); err != nil {
		return service.ListFilter{}, err
	}
	if f.EndDate, err = parseDatePtr(r.EndDate); err != nil {
		return service.ListFilter{}, err
	}
	return f, nil
}

// Bulk (JSON). Shape mengikuti kontrak FE: class_id, subject, date,
// attendance_records[{student_id, status}]. Baris TIDAK divalidasi di sini —
// error per baris dikumpulkan service supaya satu baris jelek tidak
// membatalkan sisanya.
type BulkAttendanceRequest struct {
	ClassID           string            `json:"class_id" validate:"required"`
	Subject           string            `json:"subject"  validate:"required,max=80"`
	Date              string            `json:"date"     validate:"required"`
	AttendanceRecords []service.BulkRow `json:"attendance_records"`
}

func (r BulkAttendanceRequest) ParseDate() (time.Time, error) {
	date, err := helper.ParseDateOnly(r.Date)
	if err != nil {
		return time.Time{}, service.ErrInvalidDate
	}
	return date, nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID  `json:"attendance_id"`
	AttendanceStudentID uuid.UUID  `json:"attendance_student_id"`
	AttendanceSchoolID  uuid.UUID  `json:"attendance_school_id"`
	AttendanceSubject   string     `json:"attendance_subject"`
	AttendanceDate      string     `json:"attendance_date"`
	AttendanceStatus    string     `json:"attendance_status"`
	AttendanceTeacherID uuid.UUID  `json:"attendance_teacher_id"`
	AttendanceCreatedAt time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `json:"attendance_updated_at,omitempty"`
}

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceSchoolID:  m.AttendanceSchoolID,
		AttendanceSubject:   m.AttendanceSubject,
		AttendanceDate:      helper.FormatDateOnly(m.AttendanceDate),
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceTeacherID: m.AttendanceTeacherID,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

type BulkAttendanceResponse struct {
	SuccessfulCount   int                    `json:"successful_count"`
	ErrorCount        int                    `json:"error_count"`
	SuccessfulRecords []AttendanceResponse   `json:"successful_records"`
	FailedRecords     []service.BulkRowError `json:"failed_records"`
}

func FromBulkResult(res *service.BulkResult) BulkAttendanceResponse {
	out := BulkAttendanceResponse{
		SuccessfulCount:   res.SuccessfulCount,
		ErrorCount:        res.ErrorCount,
		SuccessfulRecords: make([]AttendanceResponse, 0, len(res.SuccessfulRecords)),
		FailedRecords:     res.FailedRecords,
	}
	for _, m := range res.SuccessfulRecords {
		out.SuccessfulRecords = append(out.SuccessfulRecords, FromAttendanceModel(*m))
	}
	return out
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := helper.ParseDateOnly(s)
	if err != nil {
		return nil, service.ErrInvalidDate
	}
	return &t, nil
}
