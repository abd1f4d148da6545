// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentName    string            `json:"student_name"    validate:"required,max=120"`
	StudentClass   string            `json:"student_class"   validate:"required,max=8"`
	StudentSection *string           `json:"student_section" validate:"omitempty,max=2"`
	StudentStatus  *string           `json:"student_status"  validate:"omitempty,oneof=active inactive"`
	StudentMeta    datatypes.JSONMap `json:"student_meta"    validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID: schoolID,
		StudentName:     r.StudentName,
		StudentClass:    r.StudentClass,
		StudentSection:  r.StudentSection,
		StudentStatus:   r.StudentStatus,
		StudentMeta:     r.StudentMeta,
	}
}

type UpdateStudentRequest struct {
	StudentName    *string           `json:"student_name"    validate:"omitempty,max=120"`
	StudentClass   *string           `json:"student_class"   validate:"omitempty,max=8"`
	StudentSection *string           `json:"student_section" validate:"omitempty,max=2"`
	StudentStatus  *string           `json:"student_status"  validate:"omitempty,oneof=active inactive"`
	StudentMeta    datatypes.JSONMap `json:"student_meta"    validate:"omitempty"`
}

// ToUpdates: hanya field yang dikirim yang ikut UPDATE.
func (r UpdateStudentRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.StudentName != nil {
		updates["student_name"] = *r.StudentName
	}
	if r.StudentClass != nil {
		updates["student_class"] = *r.StudentClass
	}
	if r.StudentSection != nil {
		updates["student_section"] = *r.StudentSection
	}
	if r.StudentStatus != nil {
		updates["student_status"] = *r.StudentStatus
	}
	if r.StudentMeta != nil {
		updates["student_meta"] = r.StudentMeta
	}
	return updates
}

type FilterStudentRequest struct {
	Class   string `query:"class"   validate:"omitempty,max=8"`
	Section string `query:"section" validate:"omitempty,max=2"`
	Status  string `query:"status"  validate:"omitempty,oneof=active inactive"`
	Name    string `query:"name"    validate:"omitempty,max=120"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID         `json:"student_id"`
	StudentSchoolID  uuid.UUID         `json:"student_school_id"`
	StudentName      string            `json:"student_name"`
	StudentClass     string            `json:"student_class"`
	StudentSection   *string           `json:"student_section,omitempty"`
	StudentStatus    string            `json:"student_status"`
	StudentMeta      datatypes.JSONMap `json:"student_meta,omitempty"`
	StudentCreatedAt time.Time         `json:"student_created_at"`
	StudentUpdatedAt *time.Time        `json:"student_updated_at,omitempty"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	status := model.StudentStatusActive
	if m.StudentStatus != nil {
		status = *m.StudentStatus
	}
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentSchoolID:  m.StudentSchoolID,
		StudentName:      m.StudentName,
		StudentClass:     m.StudentClass,
		StudentSection:   m.StudentSection,
		StudentStatus:    status,
		StudentMeta:      m.StudentMeta,
		StudentCreatedAt: m.StudentCreatedAt,
		StudentUpdatedAt: m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
