package seeds

import (
	"gorm.io/gorm"

	schools "sekolahku_backend/internals/seeds/schools"
)

func RunAllSeeds(db *gorm.DB) {
	schools.SeedSchoolData(db)
}
