// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationFields(c, err)
	}

	row := req.ToModel(schoolID)
	if err := ctrl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.FromStudentModel(*row))
}

// GET /api/a/students?class=&section=&status=&name=&page=&per_page=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.FilterStudentRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationFields(c, err)
	}

	tx := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if req.Class != "" {
		tx = tx.Where("student_class = ?", req.Class)
	}
	if req.Section != "" {
		tx = tx.Where("student_section = ?", req.Section)
	}
	if req.Status != "" {
		if req.Status == model.StudentStatusActive {
			// status NULL = data lama yang dianggap active
			tx = tx.Where("(student_status = ? OR student_status IS NULL)", req.Status)
		} else {
			tx = tx.Where("student_status = ?", req.Status)
		}
	}
	if req.Name != "" {
		tx = tx.Where("student_name ILIKE ?", "%"+req.Name+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data siswa")
	}

	paging := helper.ResolvePaging(c, 20, 200)
	var rows []model.StudentModel
	err = tx.
		Order("student_class ASC, student_section ASC NULLS FIRST, student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromStudentModels(rows), &pagination)
}

// GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.StudentModel
	err = ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "", dto.FromStudentModel(row))
}

// PATCH /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return validationFields(c, err)
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	var row model.StudentModel
	if err := ctrl.DB.Where("student_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonUpdated(c, "Data siswa berhasil diubah", dto.FromStudentModel(row))
}

// DELETE /api/a/students/:id — soft delete; riwayat absensi siswa tetap ada.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
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
