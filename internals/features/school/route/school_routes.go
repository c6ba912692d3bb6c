// internals/features/school/route/school_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/controller"
	"sekolahku_backend/internals/features/school/repository"
	"sekolahku_backend/internals/features/school/service"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	schoolRepo := repository.NewSchoolRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	svc := service.NewSchoolManagementService(schoolRepo, departmentRepo, studentRepo)

	schoolCtl := &controller.SchoolController{DB: db, Service: svc, SchoolRepo: schoolRepo}
	departmentCtl := &controller.DepartmentController{DB: db, Service: svc}
	studentCtl := &controller.StudentController{DB: db, Service: svc}

	schools := api.Group("/schools")
	schools.Post("/", schoolCtl.CreateSchool)
	schools.Get("/", schoolCtl.ListSchools)
	schools.Get("/with-departments", schoolCtl.SchoolsWithDepartments)
	schools.Get("/by-students-count", schoolCtl.SchoolsByStudentsCount)
	schools.Get("/:id", schoolCtl.GetSchoolByID)
	schools.Delete("/:id", schoolCtl.DeleteSchool)

	departments := api.Group("/departments")
	departments.Post("/", departmentCtl.CreateDepartment)
	departments.Get("/popular", departmentCtl.PopularDepartments)

	students := api.Group("/students")
	students.Post("/", studentCtl.CreateStudent)
	students.Get("/", studentCtl.StudentsByGender)
	students.Get("/age-range", studentCtl.StudentsByAgeRange)
	students.Get("/by-email", studentCtl.StudentByEmail)
}
