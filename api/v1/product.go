package v1

import (
	"errors"
	"net/http"

	"github.com/agrienergy-connect/dto"
	"github.com/agrienergy-connect/lib/catalogue"
	"github.com/agrienergy-connect/services"
	"github.com/gin-gonic/gin"
)

var productService = services.NewProductService()

// ListProducts returns the catalogue, optionally narrowed by location and
// category keywords
func ListProducts(c *gin.Context) {
	filter := catalogue.Filter{
		Location: c.Query("location"),
		Category: c.Query("category"),
	}

	products, err := productService.ListProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve products: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   products,
	})
}

// CreateProduct stores a new listing owned by the caller's farmer profile
func CreateProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	product, err := productService.CreateProduct(userID.(uint), req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation failed",
				"errors":  gin.H{"farmerProfile": "Farmer profile not found."},
			})
			return
		}
		if errors.Is(err, services.ErrLocationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation failed",
				"errors":  gin.H{"location": err.Error()},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create product: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   product,
	})
}

// MyProducts returns the listings owned by the caller's farmer profile
func MyProducts(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	products, err := productService.MyProducts(userID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Farmer profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve products: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   products,
	})
}
