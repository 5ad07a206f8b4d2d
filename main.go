package main

import (
	"log"
	"os"

	"github.com/EquipTrack/EquipTrack-Backend/src/db"
	"github.com/EquipTrack/EquipTrack-Backend/src/middleware"
	"github.com/EquipTrack/EquipTrack-Backend/src/models"
	"github.com/EquipTrack/EquipTrack-Backend/src/routes"
	"github.com/EquipTrack/EquipTrack-Backend/src/seed"
	"github.com/EquipTrack/EquipTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.PersonModel{},
		&models.AccountModel{},
		&models.EquipmentModel{},
		&models.ReservationModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Baseline data
	seed.Seed(db)

	// Token signing key
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatalf("JWT_SECRET is not set")
	}
	middleware.SetSecretKey(secret)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	accountService := services.NewAccountService(db)
	equipmentService := services.NewEquipmentService(db)
	reservationService := services.NewReservationService(db, equipmentService)
	reportService := services.NewReportService(db)

	// Routes setup
	routes.SetupAccountRoutes(router, accountService)
	routes.SetupEquipmentRoutes(router, equipmentService)
	routes.SetupReservationRoutes(router, reservationService)
	routes.SetupReportRoutes(router, reportService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello from EquipTrack!")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
