package routes

import (
	"github.com/EquipTrack/EquipTrack-Backend/src/controllers"
	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupEquipmentRoutes(router *gin.Engine, service *services.EquipmentService) {

	equipmentController := controllers.NewEquipmentController(service)

	// Protected routes
	equipment := router.Group("/equipment")
	equipment.Use(middleware.AuthMiddleware())
	{
		equipment.GET("/", equipmentController.GetAllEquipment)
		equipment.GET("/:id", equipmentController.GetEquipmentByID)
		equipment.GET("/:id/availability", equipmentController.GetEquipmentAvailability)
	}

	// Staff routes
	staff := router.Group("/equipment")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		staff.POST("/", equipmentController.CreateEquipment)
		staff.POST("/import", equipmentController.ImportEquipment)
		staff.PATCH("/:id/condition", equipmentController.SetCondition)
		staff.PATCH("/:id/availability", equipmentController.SetAvailability)
	}
}
