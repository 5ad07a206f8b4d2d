package services

import (
	"bytes"
	"testing"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestGetAllEquipment(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)
	createEquipment(t, db, "Laptop", true)
	createEquipment(t, db, "Projector", false)

	equipment, err := service.GetAllEquipment()
	require.NoError(t, err)
	require.Len(t, equipment, 2)

	// Insertion order.
	assert.Equal(t, "Laptop", equipment[0].Name)
	assert.True(t, equipment[0].Available)
	assert.Equal(t, "Projector", equipment[1].Name)
	assert.False(t, equipment[1].Available)
}

func TestGetEquipmentByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)

	_, err := service.GetEquipmentByID(99)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestSetCondition(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)
	equipment := createEquipment(t, db, "Camera", true)

	require.NoError(t, service.SetCondition(equipment.Id, models.ConditionDamaged))

	updated := reloadEquipment(t, db, equipment.Id)
	assert.Equal(t, models.ConditionDamaged, updated.Condition)
	// A condition change pulls the item from circulation.
	assert.False(t, updated.Available)

	// The catalog cache was invalidated together with the update.
	fromService, err := service.GetEquipmentByID(equipment.Id)
	require.NoError(t, err)
	assert.Equal(t, models.ConditionDamaged, fromService.Condition)
}

func TestSetCondition_Invalid(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)
	equipment := createEquipment(t, db, "Camera", true)

	assert.ErrorIs(t, service.SetCondition(equipment.Id, "Broken"), ErrInvalidCondition)
	assert.True(t, reloadEquipment(t, db, equipment.Id).Available)
}

func TestSetCondition_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)

	assert.ErrorIs(t, service.SetCondition(99, models.ConditionGood), ErrEquipmentNotFound)
}

func TestSetAvailability(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)
	equipment := createEquipment(t, db, "Camera", true)

	require.NoError(t, service.SetCondition(equipment.Id, models.ConditionGood))
	assert.False(t, reloadEquipment(t, db, equipment.Id).Available)

	// Staff restore the inspected item to circulation.
	require.NoError(t, service.SetAvailability(equipment.Id, true))
	assert.True(t, reloadEquipment(t, db, equipment.Id).Available)

	assert.ErrorIs(t, service.SetAvailability(99, true), ErrEquipmentNotFound)
}

func TestCreateEquipment_DefaultsAndValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)

	equipment := &models.EquipmentModel{Name: "Tripod", Available: true}
	require.NoError(t, service.CreateEquipment(equipment))
	assert.Equal(t, models.ConditionGood, equipment.Condition)

	bad := &models.EquipmentModel{Name: "Drone", Condition: "Broken"}
	assert.ErrorIs(t, service.CreateEquipment(bad), ErrInvalidCondition)
}

func TestImportEquipmentFromExcel(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"name", "condition"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Laptop", "Good"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Microphone", "Worn Out"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"Tripod"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A5", &[]interface{}{"Drone", "Broken"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := service.ImportEquipmentFromExcel(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid condition")

	equipment, err := service.GetAllEquipment()
	require.NoError(t, err)
	require.Len(t, equipment, 3)
	// Missing condition column defaults to Good.
	assert.Equal(t, models.ConditionGood, equipment[2].Condition)
	assert.True(t, equipment[2].Available)
}

func TestImportEquipmentFromExcel_InvalidFile(t *testing.T) {
	db := newTestDB(t)
	service := NewEquipmentService(db)

	_, err := service.ImportEquipmentFromExcel(bytes.NewReader([]byte("not a spreadsheet")))
	assert.Error(t, err)
}
