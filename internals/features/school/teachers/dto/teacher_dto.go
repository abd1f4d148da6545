// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"schoolku_backend/internals/features/school/teachers/model"
	"schoolku_backend/internals/features/school/teachers/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateTeacherRequest struct {
	TeacherName          string   `json:"teacher_name"           validate:"required,max=120"`
	TeacherClassAssigned string   `json:"teacher_class_assigned" validate:"omitempty,max=255"`
	TeacherSubjects      []string `json:"teacher_subjects"       validate:"omitempty,dive,max=80"`
}

func (r CreateTeacherRequest) ToModel(schoolID uuid.UUID) *model.TeacherModel {
	return &model.TeacherModel{
		TeacherSchoolID:      schoolID,
		TeacherName:          r.TeacherName,
		TeacherClassAssigned: normalizeAssigned(r.TeacherClassAssigned),
		TeacherSubjects:      pq.StringArray(r.TeacherSubjects),
	}
}

type UpdateTeacherRequest struct {
	TeacherName          *string  `json:"teacher_name"           validate:"omitempty,max=120"`
	TeacherClassAssigned *string  `json:"teacher_class_assigned" validate:"omitempty,max=255"`
	TeacherSubjects      []string `json:"teacher_subjects"       validate:"omitempty,dive,max=80"`
}

func (r UpdateTeacherRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.TeacherName != nil {
		updates["teacher_name"] = *r.TeacherName
	}
	if r.TeacherClassAssigned != nil {
		updates["teacher_class_assigned"] = normalizeAssigned(*r.TeacherClassAssigned)
	}
	if r.TeacherSubjects != nil {
		updates["teacher_subjects"] = pq.StringArray(r.TeacherSubjects)
	}
	return updates
}

// ValidateAssigned: saat WRITE setiap token CSV harus valid, supaya data baru
// tidak menambah token rusak yang nanti cuma diabaikan parser.
func ValidateAssigned(csv string) error {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	for _, p := range strings.Split(csv, ",") {
		if _, err := service.ParseClassSpec(p); err != nil {
			return err
		}
	}
	return nil
}

func normalizeAssigned(csv string) string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type TeacherResponse struct {
	TeacherID            uuid.UUID  `json:"teacher_id"`
	TeacherSchoolID      uuid.UUID  `json:"teacher_school_id"`
	TeacherName          string     `json:"teacher_name"`
	TeacherClassAssigned string     `json:"teacher_class_assigned"`
	TeacherSubjects      []string   `json:"teacher_subjects"`
	TeacherCreatedAt     time.Time  `json:"teacher_created_at"`
	TeacherUpdatedAt     *time.Time `json:"teacher_updated_at,omitempty"`
}

func FromTeacherModel(m model.TeacherModel) TeacherResponse {
	subjects := []string(m.TeacherSubjects)
	if subjects == nil {
		subjects = []string{}
	}
	return TeacherResponse{
		TeacherID:            m.TeacherID,
		TeacherSchoolID:      m.TeacherSchoolID,
		TeacherName:          m.TeacherName,
		TeacherClassAssigned: m.TeacherClassAssigned,
		TeacherSubjects:      subjects,
		TeacherCreatedAt:     m.TeacherCreatedAt,
		TeacherUpdatedAt:     m.TeacherUpdatedAt,
	}
}

func FromTeacherModels(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTeacherModel(m))
	}
	return out
}
