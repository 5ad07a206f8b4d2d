package services

import (
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/dtos"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"gorm.io/gorm"
)

// DefaultTopBorrowedLimit matches the staff menu's "top 3 most borrowed" view.
const DefaultTopBorrowedLimit = 3

type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// GetOverdueReservations lists every Overdue reservation joined with the
// borrower and equipment, oldest end date first.
func (s *ReportService) GetOverdueReservations() ([]dtos.OverdueReservationDTO, error) {
	type overdueRow struct {
		Id            int
		Username      string
		EquipmentName string `gorm:"column:equipment_name"`
		StartDate     time.Time
		EndDate       time.Time
		Status        string
	}

	var rows []overdueRow
	err := s.db.Table("reservation_models AS r").
		Select("r.id, r.username, e.name AS equipment_name, r.start_date, r.end_date, r.status").
		Joins("JOIN equipment_models e ON e.id = r.equipment_id").
		Where("r.status = ?", models.StatusOverdue).
		Order("r.end_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overdue := make([]dtos.OverdueReservationDTO, 0, len(rows))
	for _, row := range rows {
		overdue = append(overdue, dtos.OverdueReservationDTO{
			Id:            row.Id,
			Username:      row.Username,
			EquipmentName: row.EquipmentName,
			StartDate:     row.StartDate.Format(dtos.DateLayout),
			EndDate:       row.EndDate.Format(dtos.DateLayout),
			Status:        row.Status,
		})
	}

	return overdue, nil
}

// GetTopBorrowedEquipment returns (equipment name, reservation count) pairs,
// most borrowed first. Reservations in any status count as a borrow.
func (s *ReportService) GetTopBorrowedEquipment(limit int) ([]dtos.TopBorrowedDTO, error) {
	if limit <= 0 {
		limit = DefaultTopBorrowedLimit
	}

	var rows []dtos.TopBorrowedDTO
	err := s.db.Table("equipment_models AS e").
		Select("e.name AS equipment_name, COUNT(r.id) AS borrow_count").
		Joins("JOIN reservation_models r ON r.equipment_id = e.id").
		Group("e.name").
		Order("borrow_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
