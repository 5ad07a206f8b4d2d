package services

import (
	"testing"
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/dtos"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.PersonModel{},
		&models.AccountModel{},
		&models.EquipmentModel{},
		&models.ReservationModel{},
	))

	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dtos.DateLayout, s)
	require.NoError(t, err)
	return d
}

func createEquipment(t *testing.T, db *gorm.DB, name string, available bool) *models.EquipmentModel {
	t.Helper()

	equipment := &models.EquipmentModel{Name: name, Condition: models.ConditionGood, Available: true}
	require.NoError(t, db.Create(equipment).Error)
	if !available {
		// The column defaults to true, so flip it after the insert.
		require.NoError(t, db.Model(equipment).Update("available", false).Error)
		equipment.Available = false
	}
	return equipment
}

func createPerson(t *testing.T, db *gorm.DB, fullname, email string, role models.Role) *models.PersonModel {
	t.Helper()

	person := &models.PersonModel{Fullname: fullname, Email: email, Role: role}
	require.NoError(t, db.Create(person).Error)
	return person
}

func reloadEquipment(t *testing.T, db *gorm.DB, id int) *models.EquipmentModel {
	t.Helper()

	var equipment models.EquipmentModel
	require.NoError(t, db.First(&equipment, id).Error)
	return &equipment
}
