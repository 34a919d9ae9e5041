package services

import (
	"testing"
	"time"

	"student-activity-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database migrated with every model
// the services touch.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	tables := append([]interface{}{&models.Role{}, &models.User{}}, models.SubmissionModels()...)
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	roles := []models.Role{
		{RoleID: models.RoleStudent, Role: "student"},
		{RoleID: models.RoleFaculty, Role: "faculty"},
		{RoleID: models.RoleAdmin, Role: "admin"},
	}
	for i := range roles {
		if err := db.Create(&roles[i]).Error; err != nil {
			t.Fatalf("failed to seed role %d: %v", roles[i].RoleID, err)
		}
	}
	return db
}

// seedReviewPair creates student 42 advised by faculty 7, plus an
// unrelated faculty 9.
func seedReviewPair(t *testing.T, db *gorm.DB) {
	t.Helper()

	advisorID := 7
	now := time.Now()
	users := []models.User{
		{UserID: 7, UserFname: "Farida", UserLname: "Khan", Email: "f7@example.edu", RoleID: models.RoleFaculty, CreateAt: &now, UpdateAt: &now},
		{UserID: 9, UserFname: "Felix", UserLname: "Okoro", Email: "f9@example.edu", RoleID: models.RoleFaculty, CreateAt: &now, UpdateAt: &now},
		{UserID: 42, UserFname: "Sana", UserLname: "Iyer", Email: "s42@example.edu", RoleID: models.RoleStudent, AdvisorID: &advisorID, CreateAt: &now, UpdateAt: &now},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			t.Fatalf("failed to seed user %d: %v", users[i].UserID, err)
		}
	}
}

// newTestService wires a lifecycle engine over the test db and a temp
// upload directory. Notifications stay nil; mail is not under test.
func newTestService(t *testing.T, db *gorm.DB) (*SubmissionService, *DocumentStore) {
	t.Helper()

	docs := NewDocumentStore(t.TempDir())
	svc := NewSubmissionService(
		NewSubmissionRepository(db),
		docs,
		NewOwnershipService(db),
		nil,
	)
	return svc, docs
}
