package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/model"
)

// newTestDB menyalakan container PostgreSQL sekali per test function,
// lalu migrasi schema. Subtest share DB yang sama, bersihkan via truncateAll.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("sekolahku-test"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pgContainer.Terminate(terminateCtx); err != nil {
			t.Logf("Warning: failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenDSN(connStr)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func truncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("TRUNCATE TABLE students, departments, schools RESTART IDENTITY CASCADE").Error)
}

// seedHierarchy: 1 school → 1 department → 1 student, lewat internal scope.
func seedHierarchy(t *testing.T, db *gorm.DB) (*model.SchoolModel, *model.DepartmentModel, *model.StudentModel) {
	t.Helper()

	school := &model.SchoolModel{Name: "Harvard University"}
	require.NoError(t, NewSchoolRepository(db).Save(school, nil))

	department := &model.DepartmentModel{Name: "Biology", SchoolID: school.ID}
	require.NoError(t, NewDepartmentRepository(db).Save(department, nil))

	student := &model.StudentModel{
		FirstName:    "Jon",
		LastName:     "Smith",
		Gender:       model.GenderMale,
		Age:          20,
		Email:        "js@example.com",
		DepartmentID: department.ID,
	}
	require.NoError(t, NewStudentRepository(db).Save(student, nil))

	return school, department, student
}
