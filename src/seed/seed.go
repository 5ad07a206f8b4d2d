package seed

import (
	"log"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Pre-enrolled people. Enrollment happens outside the API, so the roster is
// planted here; registration only succeeds for these (fullname, email) pairs.
var people = []models.PersonModel{
	{Fullname: "Alice Navarro", Email: "alice.navarro@campus.edu", Role: models.RoleStudent},
	{Fullname: "Bob Keller", Email: "bob.keller@campus.edu", Role: models.RoleStudent},
	{Fullname: "Carla Jensen", Email: "carla.jensen@campus.edu", Role: models.RoleStudent},
	{Fullname: "Daniel Okafor", Email: "daniel.okafor@campus.edu", Role: models.RoleStudent},
	{Fullname: "Elena Petrova", Email: "elena.petrova@campus.edu", Role: models.RoleStudent},
	{Fullname: "Frank Moreau", Email: "frank.moreau@campus.edu", Role: models.RoleStaff},
	{Fullname: "Grace Lindqvist", Email: "grace.lindqvist@campus.edu", Role: models.RoleStaff},
}

// Initial catalog.
var equipmentNames = []string{
	"Laptop", "Projector", "Camera", "Microphone", "Tablet", "Monitor",
	"Speaker", "VR Headset", "Hard Drive", "HDMI Cable", "Mouse",
	"Keyboard", "Smartphone", "3D Printer", "Laser Pointer", "Charging Station",
	"Router",
}

func Seed(db *gorm.DB) {
	// People
	for _, person := range people {
		var existing models.PersonModel
		result := db.Where("email = ?", person.Email).First(&existing)
		if result.Error == nil {
			continue
		}
		p := person
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Failed to create person %s: %v\n", person.Email, err)
		}
	}

	// Front desk staff account
	var account models.AccountModel
	result := db.Where("username = ?", "frontdesk").First(&account)
	if result.Error == nil {
		log.Println("Account 'frontdesk' already exists")
	} else {
		var staff models.PersonModel
		if err := db.Where("email = ?", "frank.moreau@campus.edu").First(&staff).Error; err != nil {
			log.Printf("Failed to look up staff person for seed account: %v\n", err)
		} else {
			hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("frontdesk"), bcrypt.DefaultCost)

			newAccount := models.AccountModel{
				Id:       staff.Id,
				Username: "frontdesk",
				Password: string(hashedPassword),
			}
			if err := db.Create(&newAccount).Error; err != nil {
				log.Printf("Failed to create account: %v\n", err)
			} else {
				log.Println("Account 'frontdesk' created")
			}
		}
	}

	// Equipment catalog
	var count int64
	if err := db.Model(&models.EquipmentModel{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count equipment: %v\n", err)
		return
	}
	if count > 0 {
		log.Println("Equipment catalog already seeded")
		return
	}
	for _, name := range equipmentNames {
		equipment := models.EquipmentModel{
			Name:      name,
			Condition: models.ConditionGood,
			Available: true,
		}
		if err := db.Create(&equipment).Error; err != nil {
			log.Printf("Failed to create equipment %s: %v\n", name, err)
		}
	}
	log.Printf("Seeded %d equipment items\n", len(equipmentNames))
}
