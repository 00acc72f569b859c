package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agrienergy-connect/dto"
	"github.com/agrienergy-connect/services"
	"github.com/agrienergy-connect/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var farmerService = services.NewFarmerService()

// ListFarmers returns every farmer profile with its account and products
func ListFarmers(c *gin.Context) {
	farmers, err := farmerService.ListFarmers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve farmers: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   farmers,
	})
}

// CreateFarmer provisions a farmer account with its profile
func CreateFarmer(c *gin.Context) {
	var req dto.CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	profile, err := farmerService.CreateFarmer(req)
	if err != nil {
		var policyErr *utils.CredentialPolicyError
		if errors.As(err, &policyErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Failed to create farmer account",
				"errors":  policyErr.Reasons,
			})
			return
		}
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create farmer: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   profile,
	})
}

// GetFarmer returns a single farmer profile with its products
func GetFarmer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid farmer ID",
		})
		return
	}

	farmer, err := farmerService.GetFarmer(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Farmer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve farmer: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   farmer,
	})
}
