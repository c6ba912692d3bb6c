package database

import (
	"gorm.io/gorm"

	schoolModel "sekolahku_backend/internals/features/school/model"
)

// Migrate membuat tabel schools, departments, students (urutan FK aman).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schoolModel.SchoolModel{},
		&schoolModel.DepartmentModel{},
		&schoolModel.StudentModel{},
	)
}
