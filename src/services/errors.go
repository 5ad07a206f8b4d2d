package services

import "errors"

// Failure kinds shared by the services. Controllers match these with errors.Is
// to pick a status code; anything else is a 500.
var (
	// validation
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
	ErrInvalidCondition = errors.New("invalid equipment condition")

	// not found
	ErrPersonNotFound      = errors.New("no matching student or staff record found")
	ErrEquipmentNotFound   = errors.New("equipment not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// conflicts
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAccountExists        = errors.New("an account already exists for this person")
	ErrEquipmentUnavailable = errors.New("equipment is currently not available")
	ErrDateConflict         = errors.New("equipment is already reserved for the selected date range")

	// invalid state
	ErrReservationNotActive = errors.New("only active reservations can be marked as overdue")
	ErrNotOverdueYet        = errors.New("the reservation is not overdue yet")

	// auth
	ErrInvalidCredentials = errors.New("invalid username or password")
)
