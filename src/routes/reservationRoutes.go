package routes

import (
	"github.com/EquipTrack/EquipTrack-Backend/src/controllers"
	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.Engine, service *services.ReservationService) {

	reservationController := controllers.NewReservationController(service)

	// Protected routes
	reservation := router.Group("/reservations")
	reservation.Use(middleware.AuthMiddleware())
	{
		reservation.POST("/", reservationController.CreateReservation)
		reservation.POST("/:id/return", reservationController.ReturnReservation)
		reservation.GET("/mine", reservationController.GetMyReservations)
	}

	// Staff routes
	staff := router.Group("/reservations")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		staff.POST("/:id/overdue", reservationController.MarkOverdue)
	}
}
