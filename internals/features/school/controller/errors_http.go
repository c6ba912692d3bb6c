// internals/features/school/controller/errors_http.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/repository"
	"sekolahku_backend/internals/features/school/service"
)

// mapping error domain → status HTTP
func statusFromDomainError(err error) int {
	switch {
	case errors.Is(err, service.ErrSchoolExists),
		errors.Is(err, service.ErrDepartmentExists),
		errors.Is(err, service.ErrStudentExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrSchoolNotFound),
		errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, repository.ErrStudentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrNoDatabaseSession):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
