package models

import "time"

type ReservationStatus string

const (
	StatusActive   ReservationStatus = "Active"
	StatusReturned ReservationStatus = "Returned"
	StatusOverdue  ReservationStatus = "Overdue"
)

// ReservationModel is the ledger row. Status only ever moves Active -> Returned
// or Active -> Overdue; both are terminal.
type ReservationModel struct {
	Id          int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string            `json:"username" gorm:"type:varchar(50);not null"`
	Account     *AccountModel     `json:"account,omitempty" gorm:"foreignKey:Username;references:Username"`
	EquipmentId int               `json:"equipmentId" gorm:"column:equipment_id;not null"`
	Equipment   *EquipmentModel   `json:"equipment,omitempty" gorm:"foreignKey:EquipmentId;references:Id"`
	StartDate   time.Time         `json:"startDate" gorm:"type:date;not null"`
	EndDate     time.Time         `json:"endDate" gorm:"type:date;not null"`
	Status      ReservationStatus `json:"status" gorm:"type:varchar(20);default:'Active';not null"`
}
