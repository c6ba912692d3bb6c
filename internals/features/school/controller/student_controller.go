// internals/features/school/controller/student_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "sekolahku_backend/internals/features/school/dto"
	"sekolahku_backend/internals/features/school/model"
	"sekolahku_backend/internals/features/school/service"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB      *gorm.DB
	Service *service.SchoolManagementService
}

// CREATE
// POST /api/students
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req schoolDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SchoolName = strings.TrimSpace(req.SchoolName)
	req.DepartmentName = strings.TrimSpace(req.DepartmentName)

	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Service.AddStudentToSchool(req)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonCreated(c, "Student berhasil dibuat", resp)
}

// GET /api/students?gender=Male|Female
func (ctl *StudentController) StudentsByGender(c *fiber.Ctx) error {
	gender := model.GenderEnum(strings.TrimSpace(c.Query("gender")))
	if gender != model.GenderMale && gender != model.GenderFemale {
		return helper.JsonError(c, fiber.StatusBadRequest, "gender harus Male atau Female")
	}

	result, err := ctl.Service.FindStudentsByGender(gender)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}

// GET /api/students/age-range?min=&max=
func (ctl *StudentController) StudentsByAgeRange(c *fiber.Ctx) error {
	minAge, errMin := strconv.Atoi(c.Query("min"))
	maxAge, errMax := strconv.Atoi(c.Query("max"))
	if errMin != nil || errMax != nil || minAge < 0 || maxAge < minAge {
		return helper.JsonError(c, fiber.StatusBadRequest, "min/max tidak valid")
	}

	result, err := ctl.Service.FindStudentBetweenAgeRange(minAge, maxAge)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}

// GET /api/students/by-email?email=
func (ctl *StudentController) StudentByEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email wajib diisi")
	}

	result, err := ctl.Service.FindStudentByEmail(email)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}
