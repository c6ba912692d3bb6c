// internals/features/school/service/school_management_service.go
package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/dto"
	"sekolahku_backend/internals/features/school/model"
	"sekolahku_backend/internals/features/school/repository"
)

// aturan bisnis: duplikat / parent hilang dicek di sini SEBELUM ada write.
var (
	ErrSchoolExists       = errors.New("School already exists")
	ErrSchoolNotFound     = errors.New("School does not exist")
	ErrDepartmentExists   = errors.New("Department already exists")
	ErrDepartmentNotFound = errors.New("Department does not exist")
	ErrStudentExists      = errors.New("Student already exists")
)

// Kontrak repo dibuat interface kecil biar gampang di-mock di test.
type SchoolRepo interface {
	Save(instance *model.SchoolModel, session *gorm.DB) error
	FindByName(name string, session *gorm.DB) (*model.SchoolModel, error)
	GetSchoolsByStudentsCount(session *gorm.DB) ([]repository.SchoolStudentCount, error)
	GetAllWithDepartments(session *gorm.DB) ([]*model.SchoolModel, error)
}

type DepartmentRepo interface {
	Save(instance *model.DepartmentModel, session *gorm.DB) error
	FindByName(name string, session *gorm.DB) (*model.DepartmentModel, error)
	GetDepartmentsWithStudentCount(session *gorm.DB) ([]repository.DepartmentStudentCount, error)
}

type StudentRepo interface {
	Save(instance *model.StudentModel, session *gorm.DB) error
	GetStudentByEmail(email string, session *gorm.DB) (*model.StudentModel, error)
	GetStudentByDepartment(departmentID int, email string, session *gorm.DB) (*model.StudentModel, error)
	GetStudentAgeBetween(minAge, maxAge int, session *gorm.DB) ([]*model.StudentModel, error)
	GetStudentsByGender(gender model.GenderEnum, session *gorm.DB) ([]*model.StudentModel, error)
}

type SchoolManagementService struct {
	schoolRepo     SchoolRepo
	departmentRepo DepartmentRepo
	studentRepo    StudentRepo
}

func NewSchoolManagementService(schoolRepo SchoolRepo, departmentRepo DepartmentRepo, studentRepo StudentRepo) *SchoolManagementService {
	return &SchoolManagementService{
		schoolRepo:     schoolRepo,
		departmentRepo: departmentRepo,
		studentRepo:    studentRepo,
	}
}

/* =========================================================
   READS — hasil kosong bukan error: log info + slice kosong
   ========================================================= */

func (s *SchoolManagementService) MostPopularDepartment() ([]dto.PopularDepartmentResponse, error) {
	rows, err := s.departmentRepo.GetDepartmentsWithStudentCount(nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Println("[INFO] No departments found")
	}

	result := make([]dto.PopularDepartmentResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.PopularDepartmentResponse{
			Name:         row.DepartmentName,
			StudentCount: row.StudentCount,
		})
	}
	return result, nil
}

func (s *SchoolManagementService) FindStudentsByGender(gender model.GenderEnum) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetStudentsByGender(gender, nil)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		log.Println("[INFO] No students found")
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		result = append(result, dto.FromStudentModel(st))
	}
	return result, nil
}

func (s *SchoolManagementService) SchoolsWithAllDepartments() ([]dto.SchoolDepartmentResponse, error) {
	schools, err := s.schoolRepo.GetAllWithDepartments(nil)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		log.Println("[INFO] No schools found")
	}

	result := make([]dto.SchoolDepartmentResponse, 0, len(schools))
	for _, sc := range schools {
		result = append(result, dto.FromSchoolModelWithDepartments(sc))
	}
	return result, nil
}

func (s *SchoolManagementService) SchoolsByStudentsCount() ([]dto.SchoolStudentCountResponse, error) {
	rows, err := s.schoolRepo.GetSchoolsByStudentsCount(nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Println("[INFO] No schools found")
	}

	result := make([]dto.SchoolStudentCountResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.SchoolStudentCountResponse{
			SchoolName:   row.SchoolName,
			StudentCount: row.StudentCount,
		})
	}
	return result, nil
}

func (s *SchoolManagementService) FindStudentBetweenAgeRange(ageMin, ageMax int) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetStudentAgeBetween(ageMin, ageMax, nil)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		log.Println("[INFO] No students found")
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		result = append(result, dto.FromStudentModel(st))
	}
	return result, nil
}

// FindStudentByEmail meneruskan ErrStudentNotFound dari repo apa adanya
// (lookup by-email memang error kalau tidak ada, beda dengan lookup lain).
func (s *SchoolManagementService) FindStudentByEmail(email string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetStudentByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	resp := dto.FromStudentModel(student)
	return &resp, nil
}

/* =========================================================
   WRITES — validasi dulu, gagal = tidak ada write sama sekali
   ========================================================= */

func (s *SchoolManagementService) AddSchool(name string) (*dto.SchoolResponse, error) {
	existing, err := s.schoolRepo.FindByName(name, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSchoolExists
	}

	school := &model.SchoolModel{Name: name}
	if err := s.schoolRepo.Save(school, nil); err != nil {
		return nil, err
	}

	resp := dto.FromSchoolModel(school)
	return &resp, nil
}

func (s *SchoolManagementService) AddDepartmentToSchool(schoolName, departmentName string) (*dto.DepartmentResponse, error) {
	school, err := s.schoolRepo.FindByName(schoolName, nil)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	existing, err := s.departmentRepo.FindByName(departmentName, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDepartmentExists
	}

	department := &model.DepartmentModel{Name: departmentName, SchoolID: school.ID}
	if err := s.departmentRepo.Save(department, nil); err != nil {
		return nil, err
	}

	resp := dto.FromDepartmentModel(department)
	return &resp, nil
}

func (s *SchoolManagementService) AddStudentToSchool(req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	school, err := s.schoolRepo.FindByName(req.SchoolName, nil)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	department, err := s.departmentRepo.FindByName(req.DepartmentName, nil)
	if err != nil {
		return nil, err
	}
	if department == nil || department.SchoolID != school.ID {
		return nil, ErrDepartmentNotFound
	}

	existing, err := s.studentRepo.GetStudentByDepartment(department.ID, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudentExists
	}

	student := req.ToModel(department.ID)
	if err := s.studentRepo.Save(student, nil); err != nil {
		return nil, err
	}

	resp := dto.FromStudentModel(student)
	return &resp, nil
}
