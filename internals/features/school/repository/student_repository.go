// internals/features/school/repository/student_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/model"
)

// ErrStudentNotFound: satu-satunya lookup yang memperlakukan "tidak ada"
// sebagai error, bukan nil (lihat GetStudentByEmail). Jangan disamakan
// dengan lookup lain.
var ErrStudentNotFound = errors.New("Student not found")

type StudentRepository struct {
	*GenericRepository[model.StudentModel]
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{NewGenericRepository[model.StudentModel](db)}
}

// GetStudentByEmail: tidak ada → ErrStudentNotFound.
func (r *StudentRepository) GetStudentByEmail(email string, session *gorm.DB) (*model.StudentModel, error) {
	var out *model.StudentModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		var row model.StudentModel
		if err := s.Where("email = ?", email).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		out = &row
		return nil
	})
	return out, err
}

// GetStudentByDepartment cek keanggotaan by email di satu department,
// dipakai service untuk tolak duplikat. Tidak ada → nil.
func (r *StudentRepository) GetStudentByDepartment(departmentID int, email string, session *gorm.DB) (*model.StudentModel, error) {
	var out *model.StudentModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		var row model.StudentModel
		if err := s.Where("department_id = ? AND email = ?", departmentID, email).First(&row).Error; err != nil {
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

func (r *StudentRepository) GetStudentAgeBetween(minAge, maxAge int, session *gorm.DB) ([]*model.StudentModel, error) {
	var out []*model.StudentModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		return s.Where("age BETWEEN ? AND ?", minAge, maxAge).Find(&out).Error
	})
	return out, err
}

func (r *StudentRepository) GetStudentsByGender(gender model.GenderEnum, session *gorm.DB) ([]*model.StudentModel, error) {
	var out []*model.StudentModel
	err := r.withSession(session, true, func(s *gorm.DB) error {
		return s.Where("gender = ?", gender).Find(&out).Error
	})
	return out, err
}
