// internals/features/school/dto/department_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateDepartmentRequest struct {
	SchoolName string `json:"school_name" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=50"`
}

func (r *CreateDepartmentRequest) ToModel(schoolID int) *model.DepartmentModel {
	return &model.DepartmentModel{
		Name:     strings.TrimSpace(r.Name),
		SchoolID: schoolID,
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type DepartmentResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	SchoolID int    `json:"school_id"`
}

func FromDepartmentModel(m *model.DepartmentModel) DepartmentResponse {
	return DepartmentResponse{
		ID:       m.ID,
		Name:     m.Name,
		SchoolID: m.SchoolID,
	}
}

// PopularDepartmentResponse: baris agregasi "department + jumlah student".
type PopularDepartmentResponse struct {
	Name         string `json:"name"`
	StudentCount int64  `json:"student_count"`
}
