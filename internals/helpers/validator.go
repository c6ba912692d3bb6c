// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct: validasi DTO (validator.v10), shared instance.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError: balas 422 dengan map field → pesan.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		fieldErrors[fieldErr.Field()] = append(fieldErrors[fieldErr.Field()], fieldErr.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
