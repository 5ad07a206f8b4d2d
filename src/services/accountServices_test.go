package services

import (
	"testing"

	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	service := NewAccountService(db)
	person := createPerson(t, db, "Alice Navarro", "alice.navarro@campus.edu", models.RoleStudent)

	account, err := service.Register("Alice Navarro", "alice.navarro@campus.edu", "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, person.Id, account.Id)
	assert.Equal(t, "alice", account.Username)
	// Stored hashed, never plaintext.
	assert.NotEqual(t, "secret123", account.Password)
}

func TestRegister_PersonNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewAccountService(db)

	_, err := service.Register("Unknown Person", "x@x.com", "user1", "pw")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	var count int64
	require.NoError(t, db.Model(&models.AccountModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegister_FullnameMustMatch(t *testing.T) {
	db := newTestDB(t)
	service := NewAccountService(db)
	createPerson(t, db, "Alice Navarro", "alice.navarro@campus.edu", models.RoleStudent)

	// The (fullname, email) pair must match exactly.
	_, err := service.Register("Alice N", "alice.navarro@campus.edu", "alice", "secret123")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestRegister_UsernameTaken(t *testing.T) {
	db := newTestDB(t)
	service := NewAccountService(db)
	createPerson(t, db, "Alice Navarro", "alice.navarro@campus.edu", models.RoleStudent)
	createPerson(t, db, "Bob Keller", "bob.keller@campus.edu", models.RoleStudent)

	_, err := service.Register("Alice Navarro", "alice.navarro@campus.edu", "shared", "secret123")
	require.NoError(t, err)

	_, err = service.Register("Bob Keller", "bob.keller@campus.edu", "shared", "secret456")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_AccountExists(t *testing.T) {
	db := newTestDB(t)
	service := NewAccountService(db)
	createPerson(t, db, "Alice Navarro", "alice.navarro@campus.edu", models.RoleStudent)

	_, err := service.Register("Alice Navarro", "alice.navarro@campus.edu", "alice", "secret123")
	require.NoError(t, err)

	// Same person, different username: still one account per person.
	_, err = service.Register("Alice Navarro", "alice.navarro@campus.edu", "alice2", "secret456")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAuthenticate(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	db := newTestDB(t)
	service := NewAccountService(db)
	createPerson(t, db, "Grace Lindqvist", "grace.lindqvist@campus.edu", models.RoleStaff)

	_, err := service.Register("Grace Lindqvist", "grace.lindqvist@campus.edu", "grace", "secret123")
	require.NoError(t, err)

	token, account, err := service.Authenticate("grace", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, account.Person)
	assert.Equal(t, models.RoleStaff, account.Person.Role)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	db := newTestDB(t)
	service := NewAccountService(db)
	createPerson(t, db, "Alice Navarro", "alice.navarro@campus.edu", models.RoleStudent)

	_, err := service.Register("Alice Navarro", "alice.navarro@campus.edu", "alice", "secret123")
	require.NoError(t, err)

	// Wrong password and unknown username fail identically.
	_, _, err = service.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = service.Authenticate("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
