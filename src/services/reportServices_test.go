package services

import (
	"testing"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopBorrowedEquipment(t *testing.T) {
	db := newTestDB(t)
	service := NewReportService(db)
	camera := createEquipment(t, db, "Camera", true)
	laptop := createEquipment(t, db, "Laptop", true)
	mouse := createEquipment(t, db, "Mouse", true)

	rows := []models.ReservationModel{
		{Username: "alice", EquipmentId: camera.Id, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-03"), Status: models.StatusReturned},
		{Username: "bob", EquipmentId: camera.Id, StartDate: date(t, "2024-01-05"), EndDate: date(t, "2024-01-07"), Status: models.StatusReturned},
		{Username: "alice", EquipmentId: camera.Id, StartDate: date(t, "2024-02-01"), EndDate: date(t, "2024-02-03"), Status: models.StatusActive},
		{Username: "bob", EquipmentId: laptop.Id, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-03"), Status: models.StatusOverdue},
		{Username: "alice", EquipmentId: laptop.Id, StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-03"), Status: models.StatusActive},
		{Username: "bob", EquipmentId: mouse.Id, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-03"), Status: models.StatusReturned},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	top, err := service.GetTopBorrowedEquipment(0)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// Every status counts as a borrow; most borrowed first.
	assert.Equal(t, "Camera", top[0].EquipmentName)
	assert.Equal(t, 3, top[0].BorrowCount)
	assert.Equal(t, "Laptop", top[1].EquipmentName)
	assert.Equal(t, 2, top[1].BorrowCount)

	limited, err := service.GetTopBorrowedEquipment(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Camera", limited[0].EquipmentName)
}

func TestGetTopBorrowedEquipment_Empty(t *testing.T) {
	db := newTestDB(t)
	service := NewReportService(db)

	top, err := service.GetTopBorrowedEquipment(0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestGetOverdueReservations(t *testing.T) {
	db := newTestDB(t)
	service := NewReportService(db)
	camera := createEquipment(t, db, "Camera", true)
	laptop := createEquipment(t, db, "Laptop", true)

	rows := []models.ReservationModel{
		{Username: "alice", EquipmentId: camera.Id, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-10"), Status: models.StatusOverdue},
		{Username: "bob", EquipmentId: laptop.Id, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-04"), Status: models.StatusOverdue},
		{Username: "alice", EquipmentId: laptop.Id, StartDate: date(t, "2024-02-01"), EndDate: date(t, "2024-02-05"), Status: models.StatusActive},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	overdue, err := service.GetOverdueReservations()
	require.NoError(t, err)
	require.Len(t, overdue, 2)

	// Oldest end date first; Active rows never appear.
	assert.Equal(t, "bob", overdue[0].Username)
	assert.Equal(t, "Laptop", overdue[0].EquipmentName)
	assert.Equal(t, "2024-01-04", overdue[0].EndDate)
	assert.Equal(t, "alice", overdue[1].Username)
	assert.Equal(t, string(models.StatusOverdue), overdue[1].Status)
}
