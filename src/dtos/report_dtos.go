package dtos

type OverdueReservationDTO struct {
	Id            int    `json:"id"`
	Username      string `json:"username"`
	EquipmentName string `json:"equipmentName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
}

type TopBorrowedDTO struct {
	EquipmentName string `json:"equipmentName"`
	BorrowCount   int    `json:"borrowCount"`
}
