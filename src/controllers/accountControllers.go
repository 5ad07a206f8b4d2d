package controllers

import (
	"errors"
	"net/http"

	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AccountController struct {
	service *services.AccountService
}

func NewAccountController(service *services.AccountService) *AccountController {
	return &AccountController{service: service}
}

// Register handles POST requests to create an account for a pre-enrolled person
func (c *AccountController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := c.service.Register(req.Fullname, req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPersonNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrAccountExists):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, models.RegisterResponse{
		ID:       account.Id,
		Username: account.Username,
	})
}

// Login handles POST requests to authenticate an account
func (c *AccountController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, account, err := c.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var role models.Role
	if account.Person != nil {
		role = account.Person.Role
	}

	ctx.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: account.Username,
		Role:     role,
	})
}
