package services

import (
	"errors"
	"sync"
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/dtos"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"gorm.io/gorm"
)

// ReservationService owns the reservation ledger and the availability flag on
// equipment. Every mutation runs inside one gorm transaction so no partial
// state can commit, and mu serializes the check-then-act sections so two
// requests cannot both pass the conflict check before either writes.
// Equipment availability is only ever flipped here or by staff through
// EquipmentService.SetAvailability; it must mirror the absence of a
// non-terminal reservation.
type ReservationService struct {
	db               *gorm.DB
	mu               sync.Mutex
	equipmentService *EquipmentService // optional, for cache invalidation
}

// NewReservationService creates a new instance of ReservationService.
// equipmentService may be nil if no catalog cache needs invalidating.
func NewReservationService(db *gorm.DB, equipmentService *EquipmentService) *ReservationService {
	return &ReservationService{
		db:               db,
		equipmentService: equipmentService,
	}
}

func (s *ReservationService) invalidateEquipmentCache(id int) {
	if s.equipmentService != nil {
		s.equipmentService.InvalidateEquipmentCache(id)
	}
}

// hasConflict reports whether an Active reservation for the equipment overlaps
// [startDate, endDate]. Bounds are inclusive: back-to-back reservations that
// share an endpoint day conflict.
func hasConflict(tx *gorm.DB, equipmentId int, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.ReservationModel{}).
		Where("equipment_id = ? AND status = ?", equipmentId, models.StatusActive).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Count(&count).Error
	return count > 0, err
}

// MakeReservation books a piece of equipment for a date range. The equipment
// must exist, be available, and have no Active reservation overlapping the
// range; on success the reservation row and the availability flip commit
// together.
func (s *ReservationService) MakeReservation(username string, equipmentId int, startDate, endDate time.Time) (*models.ReservationModel, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var reservation models.ReservationModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var equipment models.EquipmentModel
		if err := tx.First(&equipment, equipmentId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return err
		}

		// Conflict is checked before the availability flag: a request that
		// overlaps an Active reservation reports the date clash, not the
		// flag that merely mirrors it.
		conflict, err := hasConflict(tx, equipmentId, startDate, endDate)
		if err != nil {
			return err
		}
		if conflict {
			return ErrDateConflict
		}

		if !equipment.Available {
			return ErrEquipmentUnavailable
		}

		reservation = models.ReservationModel{
			Username:    username,
			EquipmentId: equipmentId,
			StartDate:   startDate,
			EndDate:     endDate,
			Status:      models.StatusActive,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		return tx.Model(&models.EquipmentModel{}).
			Where("id = ?", equipmentId).
			Update("available", false).Error
	})

	if err != nil {
		return nil, err
	}

	s.invalidateEquipmentCache(equipmentId)
	return &reservation, nil
}

// ReturnEquipment closes an Active reservation and frees the equipment.
// Returned is terminal: a second call on the same id finds no Active row and
// fails without touching anything.
func (s *ReservationService) ReturnEquipment(reservationId int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var equipmentId int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.ReservationModel
		if err := tx.Where("id = ? AND status = ?", reservationId, models.StatusActive).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		equipmentId = reservation.EquipmentId

		if err := tx.Model(&models.ReservationModel{}).
			Where("id = ?", reservationId).
			Update("status", models.StatusReturned).Error; err != nil {
			return err
		}

		return tx.Model(&models.EquipmentModel{}).
			Where("id = ?", equipmentId).
			Update("available", true).Error
	})

	if err != nil {
		return err
	}

	s.invalidateEquipmentCache(equipmentId)
	return nil
}

// MarkOverdue moves an Active reservation whose end date has passed to
// Overdue. The caller supplies today so the staff endpoint can pass the clock
// and tests can pass fixed dates. Overdue equipment stays out of the pool.
func (s *ReservationService) MarkOverdue(reservationId int, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var equipmentId int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.ReservationModel
		if err := tx.First(&reservation, reservationId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if reservation.Status != models.StatusActive {
			return ErrReservationNotActive
		}
		if !today.After(reservation.EndDate) {
			return ErrNotOverdueYet
		}
		equipmentId = reservation.EquipmentId

		if err := tx.Model(&models.ReservationModel{}).
			Where("id = ?", reservationId).
			Update("status", models.StatusOverdue).Error; err != nil {
			return err
		}

		return tx.Model(&models.EquipmentModel{}).
			Where("id = ?", equipmentId).
			Update("available", false).Error
	})

	if err != nil {
		return err
	}

	s.invalidateEquipmentCache(equipmentId)
	return nil
}

// GetReservationsByUsername lists an account's reservations, newest start date
// first, joined with the equipment name.
func (s *ReservationService) GetReservationsByUsername(username string) ([]dtos.ReservationSummaryDTO, error) {
	type reservationRow struct {
		Id            int
		EquipmentName string `gorm:"column:equipment_name"`
		StartDate     time.Time
		EndDate       time.Time
		Status        string
	}

	var rows []reservationRow
	err := s.db.Table("reservation_models AS r").
		Select("r.id, e.name AS equipment_name, r.start_date, r.end_date, r.status").
		Joins("JOIN equipment_models e ON e.id = r.equipment_id").
		Where("r.username = ?", username).
		Order("r.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.ReservationSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dtos.ReservationSummaryDTO{
			Id:            row.Id,
			EquipmentName: row.EquipmentName,
			StartDate:     row.StartDate.Format(dtos.DateLayout),
			EndDate:       row.EndDate.Format(dtos.DateLayout),
			Status:        row.Status,
		})
	}

	return summaries, nil
}
