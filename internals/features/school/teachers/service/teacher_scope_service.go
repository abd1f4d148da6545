// file: internals/features/school/teachers/service/teacher_scope_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/teachers/model"
)

var ErrTeacherNotFound = errors.New("teacher tidak ditemukan")

// TeacherScopeService: resolve guru (tenant-scoped) + scope kelasnya.
// Scope dibangun sekali per request dari teacher_class_assigned.
type TeacherScopeService struct {
	DB *gorm.DB
}

func NewTeacherScopeService(db *gorm.DB) *TeacherScopeService {
	return &TeacherScopeService{DB: db}
}

func (s *TeacherScopeService) GetTeacher(schoolID, teacherID uuid.UUID) (*model.TeacherModel, error) {
	var t model.TeacherModel
	err := s.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ScopesFor mengembalikan decision set untuk CanAccess.
func (s *TeacherScopeService) ScopesFor(t *model.TeacherModel) []ClassScope {
	return ParseAssignedScopes(t.TeacherClassAssigned)
}
