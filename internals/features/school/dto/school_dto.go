// internals/features/school/dto/school_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateSchoolRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		Name: strings.TrimSpace(r.Name),
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SchoolResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func FromSchoolModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:   m.ID,
		Name: m.Name,
	}
}

// SchoolDepartmentResponse: school + seluruh department-nya (eager-load).
type SchoolDepartmentResponse struct {
	Name        string               `json:"name"`
	Departments []DepartmentResponse `json:"departments"`
}

func FromSchoolModelWithDepartments(m *model.SchoolModel) SchoolDepartmentResponse {
	deps := make([]DepartmentResponse, 0, len(m.Departments))
	for i := range m.Departments {
		deps = append(deps, FromDepartmentModel(&m.Departments[i]))
	}
	return SchoolDepartmentResponse{
		Name:        m.Name,
		Departments: deps,
	}
}

type SchoolStudentCountResponse struct {
	SchoolName   string `json:"school_name"`
	StudentCount int64  `json:"student_count"`
}
