package main

import (
	"log"

	v1 "github.com/agrienergy-connect/api/v1"
	"github.com/agrienergy-connect/config"
	"github.com/agrienergy-connect/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Connect, migrate, then bring the store to its seeded baseline
	database.Initialize()
	if err := database.Seed(database.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Mount the versioned API
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 AgriEnergy Connect API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
