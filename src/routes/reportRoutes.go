package routes

import (
	"github.com/EquipTrack/EquipTrack-Backend/src/controllers"
	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, service *services.ReportService) {

	reportController := controllers.NewReportController(service)

	// Staff routes
	reports := router.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		reports.GET("/overdue", reportController.GetOverdueReservations)
		reports.GET("/top-borrowed", reportController.GetTopBorrowed)
	}
}
