// Command add-user provisions an account from the command line. Useful
// for seeding the first admin and for creating faculty accounts before
// students are imported.
package main

import (
	"flag"
	"log"
	"time"

	"student-activity-api/config"
	"student-activity-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	fname := flag.String("fname", "", "first name")
	lname := flag.String("lname", "", "last name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	roleID := flag.Int("role", models.RoleStudent, "role id (1 student, 2 faculty, 3 admin)")
	advisorID := flag.Int("advisor", 0, "advisor user id (students only)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.InitDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	user := models.User{
		UserFname: *fname,
		UserLname: *lname,
		Email:     *email,
		Password:  string(hash),
		RoleID:    *roleID,
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	if *advisorID != 0 {
		user.AdvisorID = advisorID
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("Created user %d (%s) with role %d", user.UserID, user.Email, user.RoleID)
}
