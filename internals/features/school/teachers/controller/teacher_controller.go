// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/teachers/dto"
	"schoolku_backend/internals/features/school/teachers/model"
	"schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /api/a/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationFields(c, err)
	}
	if err := dto.ValidateAssigned(req.TeacherClassAssigned); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"teacher_class_assigned": {err.Error()},
		})
	}

	row := req.ToModel(schoolID)
	if err := ctrl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data guru")
	}
	return helper.JsonCreated(c, "Guru berhasil ditambahkan", dto.FromTeacherModel(*row))
}

// GET /api/a/teachers?name=&subject=&page=&per_page=
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	tx := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)
	if name := c.Query("name"); name != "" {
		tx = tx.Where("teacher_name ILIKE ?", "%"+name+"%")
	}
	if subject := c.Query("subject"); subject != "" {
		tx = tx.Where("? = ANY(teacher_subjects)", subject)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data guru")
	}

	paging := helper.ResolvePaging(c, 20, 200)
	var rows []model.TeacherModel
	err = tx.
		Order("teacher_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromTeacherModels(rows), &pagination)
}

// GET /api/a/teachers/:id
func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TeacherModel
	err = ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonOK(c, "", dto.FromTeacherModel(row))
}

// GET /api/t/teachers/me — profil + scope kelas milik guru yang login.
func (ctrl *TeacherController) Me(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.TeacherModel
	err = ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	scopes := service.ParseAssignedScopes(row.TeacherClassAssigned)
	specs := make([]string, 0, len(scopes))
	for _, sc := range scopes {
		specs = append(specs, sc.String())
	}
	return helper.JsonOK(c, "", fiber.Map{
		"teacher": dto.FromTeacherModel(row),
		"scopes":  specs,
	})
}

// PATCH /api/a/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationFields(c, err)
	}
	if req.TeacherClassAssigned != nil {
		if err := dto.ValidateAssigned(*req.TeacherClassAssigned); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"teacher_class_assigned": {err.Error()},
			})
		}
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data guru")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	var row model.TeacherModel
	if err := ctrl.DB.Where("teacher_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonUpdated(c, "Data guru berhasil diubah", dto.FromTeacherModel(row))
}

// DELETE /api/a/teachers/:id — soft delete.
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Delete(&model.TeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data guru")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"teacher_id": id})
}

func validationFields(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return helper.JsonValidationError(c, fields)
}
