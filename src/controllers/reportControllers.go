package controllers

import (
	"net/http"
	"strconv"

	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GetOverdueReservations handles GET requests for the overdue report
func (c *ReportController) GetOverdueReservations(ctx *gin.Context) {
	overdue, err := c.service.GetOverdueReservations()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, overdue)
}

// GetTopBorrowed handles GET requests for the most-borrowed report
func (c *ReportController) GetTopBorrowed(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	top, err := c.service.GetTopBorrowedEquipment(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, top)
}
