// internals/features/school/repository/department_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/model"
)

type DepartmentStudentCount struct {
	DepartmentID   int    `gorm:"column:id" json:"department_id"`
	DepartmentName string `gorm:"column:name" json:"department_name"`
	StudentCount   int64  `gorm:"column:student_count" json:"student_count"`
}

type DepartmentRepository struct {
	*GenericRepository[model.DepartmentModel]
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{NewGenericRepository[model.DepartmentModel](db)}
}

// FindByName mengembalikan nil kalau tidak ada.
func (r *DepartmentRepository) FindByName(name string, session *gorm.DB) (*model.DepartmentModel, error) {
	var out *model.DepartmentModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		var row model.DepartmentModel
		if err := s.Where("name = ?", name).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		out = &row
		return nil
	})
	return out, err
}

// GetDepartmentsWithStudentCount: department + jumlah student, urut terbanyak.
func (r *DepartmentRepository) GetDepartmentsWithStudentCount(session *gorm.DB) ([]DepartmentStudentCount, error) {
	var out []DepartmentStudentCount
	err := r.withSession(session, false, func(s *gorm.DB) error {
		return s.Model(&model.DepartmentModel{}).
			Select("departments.id, departments.name, COUNT(students.id) AS student_count").
			Joins("LEFT JOIN students ON students.department_id = departments.id").
			Group("departments.id, departments.name").
			Order("COUNT(students.id) DESC").
			Scan(&out).Error
	})
	return out, err
}
