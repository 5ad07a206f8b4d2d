package main

import (
	"log"
	"os"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Standalone bootstrap: creates the front desk staff login directly in the
// database when the seeded one is missing. Run with DATABASE_URL set.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.PersonModel{}, &models.AccountModel{}); err != nil {
		log.Fatalf("failed to migrate account models: %v", err)
	}

	var account models.AccountModel
	result := db.Where("username = ?", "frontdesk").First(&account)
	if result.Error == nil {
		log.Println("Account 'frontdesk' already exists")
		return
	}

	person := models.PersonModel{
		Fullname: "Front Desk",
		Email:    "frontdesk@campus.edu",
		Role:     models.RoleStaff,
	}
	if err := db.Where("email = ?", person.Email).FirstOrCreate(&person).Error; err != nil {
		log.Fatalf("failed to create staff person: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("frontdesk"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newAccount := models.AccountModel{
		Id:       person.Id,
		Username: "frontdesk",
		Password: string(hashedPassword),
	}
	if err := db.Create(&newAccount).Error; err != nil {
		log.Fatalf("failed to create account: %v", err)
	}
	log.Println("Account 'frontdesk' created")
}
