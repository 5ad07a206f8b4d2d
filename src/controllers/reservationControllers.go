package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/EquipTrack/EquipTrack-Backend/src/dtos"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// CreateReservation handles POST requests to reserve equipment for a date range.
// The username comes from the token, never from the payload.
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var req dtos.MakeReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Please use YYYY-MM-DD."})
		return
	}

	username := ctx.GetString("username")
	reservation, err := c.service.MakeReservation(username, req.EquipmentId, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDateRange):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEquipmentNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEquipmentUnavailable), errors.Is(err, services.ErrDateConflict):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusCreated, reservation)
}

// ReturnReservation handles POST requests to return borrowed equipment
func (c *ReservationController) ReturnReservation(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	if err := c.service.ReturnEquipment(id); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Equipment returned successfully"})
}

// MarkOverdue handles POST requests (staff) to flag a lapsed reservation
func (c *ReservationController) MarkOverdue(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	// Compare on date granularity: a reservation is overdue the day after its
	// end date, not at 00:01 on the end date itself.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := c.service.MarkOverdue(id, today); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrReservationNotActive), errors.Is(err, services.ErrNotOverdueYet):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Reservation marked as overdue"})
}

// GetMyReservations handles GET requests for the caller's reservation history
func (c *ReservationController) GetMyReservations(ctx *gin.Context) {
	username := ctx.GetString("username")
	reservations, err := c.service.GetReservationsByUsername(username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}
