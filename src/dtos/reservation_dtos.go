package dtos

import "time"

// DateLayout is the wire format for all reservation dates.
const DateLayout = "2006-01-02"

type MakeReservationRequest struct {
	EquipmentId int    `json:"equipmentId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// ParseDates validates the ISO date strings; services only ever see time.Time.
func (r *MakeReservationRequest) ParseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ReservationSummaryDTO is the "my reservations" row: the reservation joined
// with the equipment name, dates formatted for display.
type ReservationSummaryDTO struct {
	Id            int    `json:"id"`
	EquipmentName string `json:"equipmentName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
}
