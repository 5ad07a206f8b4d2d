package routes

import (
	"github.com/EquipTrack/EquipTrack-Backend/src/controllers"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAccountRoutes(router *gin.Engine, service *services.AccountService) {
	accountController := controllers.NewAccountController(service)

	// Public routes
	router.POST("/register", accountController.Register)
	router.POST("/login", accountController.Login)
}
