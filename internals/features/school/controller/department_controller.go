// internals/features/school/controller/department_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "sekolahku_backend/internals/features/school/dto"
	"sekolahku_backend/internals/features/school/service"
	helper "sekolahku_backend/internals/helpers"
)

type DepartmentController struct {
	DB      *gorm.DB
	Service *service.SchoolManagementService
}

// CREATE
// POST /api/departments
func (ctl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var req schoolDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SchoolName = strings.TrimSpace(req.SchoolName)
	req.Name = strings.TrimSpace(req.Name)

	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Service.AddDepartmentToSchool(req.SchoolName, req.Name)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonCreated(c, "Department berhasil dibuat", resp)
}

// GET /api/departments/popular
func (ctl *DepartmentController) PopularDepartments(c *fiber.Ctx) error {
	result, err := ctl.Service.MostPopularDepartment()
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}
