package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

type EquipmentService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewEquipmentService(db *gorm.DB) *EquipmentService {
	service := &EquipmentService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *EquipmentService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *EquipmentService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *EquipmentService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

// InvalidateEquipmentCache drops the catalog cache after an availability or
// condition change. Also called by the reservation service.
func (s *EquipmentService) InvalidateEquipmentCache(id int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.cache, "all_equipment")
	delete(s.cache, fmt.Sprintf("equipment_%d", id))
}

// GetAllEquipment retrieves the full catalog in insertion order
func (s *EquipmentService) GetAllEquipment() ([]models.EquipmentModel, error) {
	// Try to get from cache
	if cached, found := s.getCache("all_equipment"); found {
		return cached.([]models.EquipmentModel), nil
	}

	var equipment []models.EquipmentModel
	err := s.db.Order("id").Find(&equipment).Error

	if err == nil {
		// Save to cache for 5 minutes
		s.setCache("all_equipment", equipment, 5*time.Minute)
	}

	return equipment, err
}

// GetEquipmentByID retrieves a single catalog item
func (s *EquipmentService) GetEquipmentByID(id int) (*models.EquipmentModel, error) {
	cacheKey := fmt.Sprintf("equipment_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		equipment := cached.(models.EquipmentModel)
		return &equipment, nil
	}

	var equipment models.EquipmentModel
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	// Save to cache for 10 minutes
	s.setCache(cacheKey, equipment, 10*time.Minute)

	return &equipment, nil
}

// CreateEquipment adds a new item to the catalog
func (s *EquipmentService) CreateEquipment(equipment *models.EquipmentModel) error {
	if equipment.Condition == "" {
		equipment.Condition = models.ConditionGood
	}
	if !equipment.Condition.Valid() {
		return ErrInvalidCondition
	}

	if err := s.db.Create(equipment).Error; err != nil {
		return err
	}

	s.InvalidateEquipmentCache(equipment.Id)
	return nil
}

// SetCondition updates the condition label and pulls the item from circulation
// until staff restore it explicitly. A single update keeps both columns in step.
func (s *EquipmentService) SetCondition(id int, condition models.EquipmentCondition) error {
	if !condition.Valid() {
		return ErrInvalidCondition
	}

	result := s.db.Model(&models.EquipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"condition": condition, "available": false})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	s.InvalidateEquipmentCache(id)
	return nil
}

// SetAvailability is the staff release valve: it puts an inspected item back in
// circulation (or takes one out by hand). Reservations never go through here.
func (s *EquipmentService) SetAvailability(id int, available bool) error {
	result := s.db.Model(&models.EquipmentModel{}).
		Where("id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	s.InvalidateEquipmentCache(id)
	return nil
}

// ImportEquipmentFromExcel bulk-provisions the catalog from a spreadsheet.
// Expected columns: name, condition (optional, defaults to Good). A header row
// starting with "name" is skipped, as are blank rows.
func (s *EquipmentService) ImportEquipmentFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		name := strings.TrimSpace(row[0])
		if i == 0 && strings.EqualFold(name, "name") {
			continue
		}

		condition := models.ConditionGood
		if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
			condition = models.EquipmentCondition(strings.TrimSpace(row[1]))
			if !condition.Valid() {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid condition %q", i+1, row[1]))
				continue
			}
		}

		equipment := models.EquipmentModel{
			Name:      name,
			Condition: condition,
			Available: true,
		}
		if err := s.db.Create(&equipment).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	s.InvalidateEquipmentCache(0)
	return result, nil
}
