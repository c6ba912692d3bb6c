// internals/features/school/dto/student_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateStudentRequest struct {
	SchoolName     string           `json:"school_name" validate:"required,max=50"`
	DepartmentName string           `json:"department_name" validate:"required,max=50"`
	FirstName      string           `json:"first_name" validate:"required,max=50"`
	LastName       string           `json:"last_name" validate:"required,max=50"`
	Gender         model.GenderEnum `json:"gender" validate:"required,oneof=Male Female"`
	Age            int              `json:"age" validate:"gte=0"`
	Email          string           `json:"email" validate:"required,email,max=50"`
}

func (r *CreateStudentRequest) ToModel(departmentID int) *model.StudentModel {
	return &model.StudentModel{
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Gender:       r.Gender,
		Age:          r.Age,
		Email:        strings.TrimSpace(r.Email),
		DepartmentID: departmentID,
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type StudentResponse struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Gender    model.GenderEnum `json:"gender"`
	Age       int              `json:"age"`
	Email     string           `json:"email"`
}

func FromStudentModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Gender:    m.Gender,
		Age:       m.Age,
		Email:     m.Email,
	}
}
