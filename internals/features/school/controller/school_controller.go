// internals/features/school/controller/school_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "sekolahku_backend/internals/features/school/dto"
	"sekolahku_backend/internals/features/school/repository"
	"sekolahku_backend/internals/features/school/service"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolController struct {
	DB         *gorm.DB
	Service    *service.SchoolManagementService
	SchoolRepo *repository.SchoolRepository
}

// CREATE
// POST /api/schools
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)

	// validasi DTO
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Service.AddSchool(req.Name)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonCreated(c, "School berhasil dibuat", resp)
}

// GET /api/schools
func (ctl *SchoolController) ListSchools(c *fiber.Ctx) error {
	schools, err := ctl.SchoolRepo.FindAll(nil)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}

	out := make([]schoolDTO.SchoolResponse, 0, len(schools))
	for _, s := range schools {
		out = append(out, schoolDTO.FromSchoolModel(s))
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/schools/:id
func (ctl *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	school, err := ctl.SchoolRepo.FindByID(id, nil)
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	if school == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", schoolDTO.FromSchoolModel(school))
}

// DELETE /api/schools/:id
// Jalan dalam transaksi controller; tx diteruskan ke repo sebagai session
// eksternal, commit/rollback di sini.
func (ctl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		return ctl.SchoolRepo.DeleteByID(id, tx)
	}); err != nil {
		// RESTRICT: school yang masih punya department tidak bisa dihapus
		return helper.JsonError(c, fiber.StatusConflict, "School tidak bisa dihapus: "+err.Error())
	}
	return helper.JsonDeleted(c, "School berhasil dihapus", fiber.Map{"id": id})
}

// GET /api/schools/with-departments
func (ctl *SchoolController) SchoolsWithDepartments(c *fiber.Ctx) error {
	result, err := ctl.Service.SchoolsWithAllDepartments()
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}

// GET /api/schools/by-students-count
func (ctl *SchoolController) SchoolsByStudentsCount(c *fiber.Ctx) error {
	result, err := ctl.Service.SchoolsByStudentsCount()
	if err != nil {
		return helper.JsonError(c, statusFromDomainError(err), err.Error())
	}
	return helper.JsonOK(c, "ok", result)
}
