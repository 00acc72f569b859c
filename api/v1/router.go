package v1

import (
	"github.com/agrienergy-connect/middleware"
	"github.com/agrienergy-connect/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Farmer management - employees and admins only
	farmerGroup := router.Group("/farmers")
	farmerGroup.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin))
	{
		farmerGroup.GET("", ListFarmers)
		farmerGroup.POST("", CreateFarmer)
		farmerGroup.GET("/:id", GetFarmer)
	}

	// Product catalogue
	productGroup := router.Group("/products")
	productGroup.Use(middleware.AuthMiddleware())
	{
		productGroup.GET("", middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin), ListProducts)
		productGroup.POST("", middleware.RequireRoles(models.RoleFarmer), CreateProduct)
		productGroup.GET("/mine", middleware.RequireRoles(models.RoleFarmer), MyProducts)
	}
}
