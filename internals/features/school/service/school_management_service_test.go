package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/dto"
	"sekolahku_backend/internals/features/school/model"
	"sekolahku_backend/internals/features/school/repository"
)

func newServiceForTest() (*SchoolManagementService, *MockSchoolRepository, *MockDepartmentRepository, *MockStudentRepository) {
	schoolRepo := &MockSchoolRepository{}
	departmentRepo := &MockDepartmentRepository{}
	studentRepo := &MockStudentRepository{}
	svc := NewSchoolManagementService(schoolRepo, departmentRepo, studentRepo)
	return svc, schoolRepo, departmentRepo, studentRepo
}

func sampleStudent() *model.StudentModel {
	return &model.StudentModel{
		ID:           1,
		FirstName:    "Jon",
		LastName:     "Smith",
		Gender:       model.GenderMale,
		Age:          20,
		Email:        "js@example.com",
		DepartmentID: 1,
	}
}

func TestMostPopularDepartment(t *testing.T) {
	t.Run("Should map count rows to responses", func(t *testing.T) {
		svc, _, departmentRepo, _ := newServiceForTest()
		departmentRepo.On("GetDepartmentsWithStudentCount", mock.Anything).
			Return([]repository.DepartmentStudentCount{
				{DepartmentID: 1, DepartmentName: "Biology", StudentCount: 1},
			}, nil)

		result, err := svc.MostPopularDepartment()
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Biology", result[0].Name)
		assert.EqualValues(t, 1, result[0].StudentCount)
	})

	t.Run("Should return empty slice when no departments", func(t *testing.T) {
		svc, _, departmentRepo, _ := newServiceForTest()
		departmentRepo.On("GetDepartmentsWithStudentCount", mock.Anything).
			Return([]repository.DepartmentStudentCount{}, nil)

		result, err := svc.MostPopularDepartment()
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFindStudentsByGender(t *testing.T) {
	t.Run("Should return matching students", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentsByGender", model.GenderMale, mock.Anything).
			Return([]*model.StudentModel{sampleStudent()}, nil)

		result, err := svc.FindStudentsByGender(model.GenderMale)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, model.GenderMale, result[0].Gender)
	})

	t.Run("Should return empty slice when no students", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentsByGender", model.GenderFemale, mock.Anything).
			Return([]*model.StudentModel{}, nil)

		result, err := svc.FindStudentsByGender(model.GenderFemale)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestSchoolsWithAllDepartments(t *testing.T) {
	t.Run("Should include departments of each school", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("GetAllWithDepartments", mock.Anything).
			Return([]*model.SchoolModel{
				{
					ID:   1,
					Name: "Harvard University",
					Departments: []model.DepartmentModel{
						{ID: 1, Name: "Biology", SchoolID: 1},
					},
				},
			}, nil)

		result, err := svc.SchoolsWithAllDepartments()
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Harvard University", result[0].Name)
		require.Len(t, result[0].Departments, 1)
		assert.Equal(t, "Biology", result[0].Departments[0].Name)
	})

	t.Run("Should return empty slice when no schools", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("GetAllWithDepartments", mock.Anything).
			Return([]*model.SchoolModel{}, nil)

		result, err := svc.SchoolsWithAllDepartments()
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestSchoolsByStudentsCount(t *testing.T) {
	t.Run("Should map count rows to responses", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("GetSchoolsByStudentsCount", mock.Anything).
			Return([]repository.SchoolStudentCount{
				{SchoolID: 1, SchoolName: "Harvard University", StudentCount: 2},
				{SchoolID: 2, SchoolName: "Cambridge University", StudentCount: 0},
			}, nil)

		result, err := svc.SchoolsByStudentsCount()
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Harvard University", result[0].SchoolName)
		assert.EqualValues(t, 2, result[0].StudentCount)
		assert.EqualValues(t, 0, result[1].StudentCount)
	})

	t.Run("Should return empty slice when no schools", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("GetSchoolsByStudentsCount", mock.Anything).
			Return([]repository.SchoolStudentCount{}, nil)

		result, err := svc.SchoolsByStudentsCount()
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFindStudentBetweenAgeRange(t *testing.T) {
	t.Run("Should return students in range", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentAgeBetween", 18, 22, mock.Anything).
			Return([]*model.StudentModel{sampleStudent()}, nil)

		result, err := svc.FindStudentBetweenAgeRange(18, 22)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 20, result[0].Age)
	})

	t.Run("Should return empty slice when no students in range", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentAgeBetween", 40, 50, mock.Anything).
			Return([]*model.StudentModel{}, nil)

		result, err := svc.FindStudentBetweenAgeRange(40, 50)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFindStudentByEmail(t *testing.T) {
	t.Run("Should return the matching student", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentByEmail", "js@example.com", mock.Anything).
			Return(sampleStudent(), nil)

		result, err := svc.FindStudentByEmail("js@example.com")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "js@example.com", result.Email)
	})

	t.Run("Should propagate not-found error", func(t *testing.T) {
		svc, _, _, studentRepo := newServiceForTest()
		studentRepo.On("GetStudentByEmail", "nobody@example.com", mock.Anything).
			Return(nil, repository.ErrStudentNotFound)

		result, err := svc.FindStudentByEmail("nobody@example.com")
		require.ErrorIs(t, err, repository.ErrStudentNotFound)
		assert.Nil(t, result)
	})
}

func TestAddSchool(t *testing.T) {
	t.Run("Should save a new school", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("FindByName", "Test School", mock.Anything).Return(nil, nil)
		schoolRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.AddSchool("Test School")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Test School", result.Name)
		schoolRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate school without writing", func(t *testing.T) {
		svc, schoolRepo, _, _ := newServiceForTest()
		schoolRepo.On("FindByName", "Test School", mock.Anything).
			Return(&model.SchoolModel{ID: 1, Name: "Test School"}, nil)

		_, err := svc.AddSchool("Test School")
		require.ErrorIs(t, err, ErrSchoolExists)
		schoolRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAddDepartmentToSchool(t *testing.T) {
	school := &model.SchoolModel{ID: 1, Name: "Harvard University"}

	t.Run("Should save a new department", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, _ := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", "Test Department", mock.Anything).Return(nil, nil)
		departmentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.AddDepartmentToSchool(school.Name, "Test Department")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, school.ID, result.SchoolID)
		departmentRepo.AssertExpectations(t)
	})

	t.Run("Should reject when school does not exist", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, _ := newServiceForTest()
		schoolRepo.On("FindByName", "Atlantis", mock.Anything).Return(nil, nil)

		_, err := svc.AddDepartmentToSchool("Atlantis", "Test Department")
		require.ErrorIs(t, err, ErrSchoolNotFound)
		departmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject duplicate department", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, _ := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", "Biology", mock.Anything).
			Return(&model.DepartmentModel{ID: 1, Name: "Biology", SchoolID: school.ID}, nil)

		_, err := svc.AddDepartmentToSchool(school.Name, "Biology")
		require.ErrorIs(t, err, ErrDepartmentExists)
		departmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAddStudentToSchool(t *testing.T) {
	school := &model.SchoolModel{ID: 1, Name: "Harvard University"}
	department := &model.DepartmentModel{ID: 1, Name: "Biology", SchoolID: 1}

	req := dto.CreateStudentRequest{
		SchoolName:     school.Name,
		DepartmentName: department.Name,
		FirstName:      "Test Name",
		LastName:       "Test Name",
		Gender:         model.GenderMale,
		Age:            20,
		Email:          "test@example.com",
	}

	t.Run("Should save a new student", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, studentRepo := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", department.Name, mock.Anything).Return(department, nil)
		studentRepo.On("GetStudentByDepartment", department.ID, req.Email, mock.Anything).Return(nil, nil)
		studentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.AddStudentToSchool(req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, req.Email, result.Email)
		studentRepo.AssertExpectations(t)
	})

	t.Run("Should reject when school does not exist", func(t *testing.T) {
		svc, schoolRepo, _, studentRepo := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(nil, nil)

		_, err := svc.AddStudentToSchool(req)
		require.ErrorIs(t, err, ErrSchoolNotFound)
		studentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject when department does not exist", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, studentRepo := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", department.Name, mock.Anything).Return(nil, nil)

		_, err := svc.AddStudentToSchool(req)
		require.ErrorIs(t, err, ErrDepartmentNotFound)
		studentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject department that belongs to another school", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, studentRepo := newServiceForTest()
		other := &model.DepartmentModel{ID: 2, Name: department.Name, SchoolID: 99}
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", department.Name, mock.Anything).Return(other, nil)

		_, err := svc.AddStudentToSchool(req)
		require.ErrorIs(t, err, ErrDepartmentNotFound)
		studentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject duplicate student without writing", func(t *testing.T) {
		svc, schoolRepo, departmentRepo, studentRepo := newServiceForTest()
		schoolRepo.On("FindByName", school.Name, mock.Anything).Return(school, nil)
		departmentRepo.On("FindByName", department.Name, mock.Anything).Return(department, nil)
		studentRepo.On("GetStudentByDepartment", department.ID, req.Email, mock.Anything).
			Return(sampleStudent(), nil)

		_, err := svc.AddStudentToSchool(req)
		require.ErrorIs(t, err, ErrStudentExists)
		studentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
