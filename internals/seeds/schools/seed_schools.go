// internals/seeds/schools/seed_schools.go
package schools

import (
	"log"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/model"
	"sekolahku_backend/internals/features/school/repository"
)

// SeedSchoolData mengisi data demo: 2 school, 4 department, 2 student.
// Skip kalau sudah ada isinya.
func SeedSchoolData(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.SchoolModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek data schools: %v", err)
		return
	}
	if count > 0 {
		log.Println("⏭️ Seed schools dilewati, data sudah ada")
		return
	}

	schoolRepo := repository.NewSchoolRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	harvard := &model.SchoolModel{Name: "Harvard University"}
	cambridge := &model.SchoolModel{Name: "Cambridge University"}
	if err := schoolRepo.SaveAll([]*model.SchoolModel{harvard, cambridge}, nil); err != nil {
		log.Printf("❌ Gagal seed schools: %v", err)
		return
	}

	mathematics := &model.DepartmentModel{Name: "Mathematics", SchoolID: harvard.ID}
	biology := &model.DepartmentModel{Name: "Biology", SchoolID: harvard.ID}
	informatica := &model.DepartmentModel{Name: "Informatica", SchoolID: cambridge.ID}
	chemics := &model.DepartmentModel{Name: "Chemics", SchoolID: cambridge.ID}
	if err := departmentRepo.SaveAll([]*model.DepartmentModel{mathematics, biology, informatica, chemics}, nil); err != nil {
		log.Printf("❌ Gagal seed departments: %v", err)
		return
	}

	students := []*model.StudentModel{
		{
			FirstName:    "John",
			LastName:     "Smith",
			Gender:       model.GenderMale,
			Age:          30,
			Email:        "JS@example.com",
			DepartmentID: mathematics.ID,
		},
		{
			FirstName:    "Jon",
			LastName:     "Doe",
			Gender:       model.GenderMale,
			Age:          25,
			Email:        "JD@example.com",
			DepartmentID: informatica.ID,
		},
	}
	if err := studentRepo.SaveAll(students, nil); err != nil {
		log.Printf("❌ Gagal seed students: %v", err)
		return
	}

	log.Println("✅ Seed schools selesai")
}
