// internals/features/school/repository/school_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/model"
)

// SchoolStudentCount: satu baris hasil agregasi school + jumlah student.
type SchoolStudentCount struct {
	SchoolID     int    `gorm:"column:id" json:"school_id"`
	SchoolName   string `gorm:"column:name" json:"school_name"`
	StudentCount int64  `gorm:"column:student_count" json:"student_count"`
}

type SchoolRepository struct {
	*GenericRepository[model.SchoolModel]
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{NewGenericRepository[model.SchoolModel](db)}
}

// FindByName mengembalikan nil kalau tidak ada.
func (r *SchoolRepository) FindByName(name string, session *gorm.DB) (*model.SchoolModel, error) {
	var out *model.SchoolModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		var row model.SchoolModel
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

// GetSchoolsByStudentsCount: school + jumlah student (lewat departments),
// urut dari yang terbanyak. School tanpa department/student tetap muncul
// dengan count 0 (LEFT JOIN).
func (r *SchoolRepository) GetSchoolsByStudentsCount(session *gorm.DB) ([]SchoolStudentCount, error) {
	var out []SchoolStudentCount
	err := r.withSession(session, true, func(s *gorm.DB) error {
		return s.Model(&model.SchoolModel{}).
			Select("schools.id, schools.name, COUNT(students.id) AS student_count").
			Joins("LEFT JOIN departments ON departments.school_id = schools.id").
			Joins("LEFT JOIN students ON students.department_id = departments.id").
			Group("schools.id, schools.name").
			Order("COUNT(students.id) DESC").
			Scan(&out).Error
	})
	return out, err
}

// GetAllWithDepartments eager-load departments-nya sekalian.
func (r *SchoolRepository) GetAllWithDepartments(session *gorm.DB) ([]*model.SchoolModel, error) {
	var out []*model.SchoolModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		return s.Preload("Departments").Find(&out).Error
	})
	return out, err
}
