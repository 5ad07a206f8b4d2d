package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EquipTrack/EquipTrack-Backend/src/dtos"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type EquipmentController struct {
	service *services.EquipmentService
}

func NewEquipmentController(service *services.EquipmentService) *EquipmentController {
	return &EquipmentController{service: service}
}

// GetAllEquipment handles GET requests to list the catalog
func (c *EquipmentController) GetAllEquipment(ctx *gin.Context) {
	equipment, err := c.service.GetAllEquipment()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, equipment)
}

// GetEquipmentByID handles GET requests to retrieve one catalog item
func (c *EquipmentController) GetEquipmentByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	equipment, err := c.service.GetEquipmentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, equipment)
}

// GetEquipmentAvailability handles GET requests for the availability check menu item
func (c *EquipmentController) GetEquipmentAvailability(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	equipment, err := c.service.GetEquipmentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": equipment.Id, "available": equipment.Available})
}

// CreateEquipment handles POST requests to add a catalog item
func (c *EquipmentController) CreateEquipment(ctx *gin.Context) {
	var equipment models.EquipmentModel
	if err := ctx.ShouldBindJSON(&equipment); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.CreateEquipment(&equipment); err != nil {
		if errors.Is(err, services.ErrInvalidCondition) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, equipment)
}

// ImportEquipment handles POST (multipart) requests to bulk-load the catalog
// from a spreadsheet
func (c *EquipmentController) ImportEquipment(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportEquipmentFromExcel(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"imported": result.Imported, "errors": result.Errors})
}

// SetCondition handles PATCH requests to relabel an item's condition; the item
// is pulled from circulation until availability is restored
func (c *EquipmentController) SetCondition(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req dtos.SetConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.SetCondition(id, models.EquipmentCondition(req.Condition)); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCondition):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEquipmentNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "condition": req.Condition})
}

// SetAvailability handles PATCH requests to restore (or pull) an item by hand
func (c *EquipmentController) SetAvailability(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req dtos.SetAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.SetAvailability(id, *req.Available); err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "available": *req.Available})
}
