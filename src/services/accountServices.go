package services

import (
	"errors"
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	db *gorm.DB
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates an account for a pre-enrolled person. The (fullname, email)
// pair must match an existing person exactly, the username must be free, and
// the person must not already own an account.
func (s *AccountService) Register(fullname, email, username, password string) (*models.AccountModel, error) {
	var account models.AccountModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var person models.PersonModel
		if err := tx.Where("fullname = ? AND email = ?", fullname, email).First(&person).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.AccountModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		if err := tx.Model(&models.AccountModel{}).Where("id = ?", person.Id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAccountExists
		}

		// Hash the password before saving
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		account = models.AccountModel{
			Id:       person.Id,
			Username: username,
			Password: string(hashedPassword),
		}
		return tx.Create(&account).Error
	})

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Authenticate checks account credentials and returns a JWT token if valid.
// Unknown usernames and wrong passwords produce the same error.
func (s *AccountService) Authenticate(username, password string) (string, *models.AccountModel, error) {
	var account models.AccountModel
	result := s.db.Preload("Person").Where("username = ?", username).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, result.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	var role models.Role
	if account.Person != nil {
		role = account.Person.Role
	}

	claims := jwt.MapClaims{
		"id":       account.Id,
		"username": account.Username,
		"role":     string(role),
		"exp":      time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", nil, err
	}

	return tokenString, &account, nil
}
