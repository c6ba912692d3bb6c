package service

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/model"
	"sekolahku_backend/internals/features/school/repository"
)

// MockSchoolRepository implements SchoolRepo for testing
type MockSchoolRepository struct {
	mock.Mock
}

func (m *MockSchoolRepository) Save(instance *model.SchoolModel, session *gorm.DB) error {
	args := m.Called(instance, session)
	return args.Error(0)
}

func (m *MockSchoolRepository) FindByName(name string, session *gorm.DB) (*model.SchoolModel, error) {
	args := m.Called(name, session)
	school, _ := args.Get(0).(*model.SchoolModel)
	return school, args.Error(1)
}

func (m *MockSchoolRepository) GetSchoolsByStudentsCount(session *gorm.DB) ([]repository.SchoolStudentCount, error) {
	args := m.Called(session)
	rows, _ := args.Get(0).([]repository.SchoolStudentCount)
	return rows, args.Error(1)
}

func (m *MockSchoolRepository) GetAllWithDepartments(session *gorm.DB) ([]*model.SchoolModel, error) {
	args := m.Called(session)
	schools, _ := args.Get(0).([]*model.SchoolModel)
	return schools, args.Error(1)
}

// MockDepartmentRepository implements DepartmentRepo for testing
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Save(instance *model.DepartmentModel, session *gorm.DB) error {
	args := m.Called(instance, session)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByName(name string, session *gorm.DB) (*model.DepartmentModel, error) {
	args := m.Called(name, session)
	department, _ := args.Get(0).(*model.DepartmentModel)
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) GetDepartmentsWithStudentCount(session *gorm.DB) ([]repository.DepartmentStudentCount, error) {
	args := m.Called(session)
	rows, _ := args.Get(0).([]repository.DepartmentStudentCount)
	return rows, args.Error(1)
}

// MockStudentRepository implements StudentRepo for testing
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Save(instance *model.StudentModel, session *gorm.DB) error {
	args := m.Called(instance, session)
	return args.Error(0)
}

func (m *MockStudentRepository) GetStudentByEmail(email string, session *gorm.DB) (*model.StudentModel, error) {
	args := m.Called(email, session)
	student, _ := args.Get(0).(*model.StudentModel)
	return student, args.Error(1)
}

func (m *MockStudentRepository) GetStudentByDepartment(departmentID int, email string, session *gorm.DB) (*model.StudentModel, error) {
	args := m.Called(departmentID, email, session)
	student, _ := args.Get(0).(*model.StudentModel)
	return student, args.Error(1)
}

func (m *MockStudentRepository) GetStudentAgeBetween(minAge, maxAge int, session *gorm.DB) ([]*model.StudentModel, error) {
	args := m.Called(minAge, maxAge, session)
	students, _ := args.Get(0).([]*model.StudentModel)
	return students, args.Error(1)
}

func (m *MockStudentRepository) GetStudentsByGender(gender model.GenderEnum, session *gorm.DB) ([]*model.StudentModel, error) {
	args := m.Called(gender, session)
	students, _ := args.Get(0).([]*model.StudentModel)
	return students, args.Error(1)
}
