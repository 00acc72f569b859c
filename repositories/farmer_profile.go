package repositories

import (
	"github.com/agrienergy-connect/database"
	"github.com/agrienergy-connect/models"
	"gorm.io/gorm"
)

// FarmerProfileRepository handles database operations for farmer profiles
type FarmerProfileRepository struct{}

// NewFarmerProfileRepository creates a new farmer profile repository instance
func NewFarmerProfileRepository() *FarmerProfileRepository {
	return &FarmerProfileRepository{}
}

// FindAll retrieves all farmer profiles with their accounts and products
func (r *FarmerProfileRepository) FindAll() ([]models.FarmerProfile, error) {
	var profiles []models.FarmerProfile
	result := database.DB.Preload("User").Preload("Products").Find(&profiles)
	return profiles, result.Error
}

// FindByID retrieves a farmer profile by its ID with account and products
func (r *FarmerProfileRepository) FindByID(id uint) (models.FarmerProfile, error) {
	var profile models.FarmerProfile
	result := database.DB.Preload("User").Preload("Products").First(&profile, "id = ?", id)
	return profile, result.Error
}

// FindByUserID retrieves the single profile owned by the account, if any.
// There is at most one profile per account id.
func (r *FarmerProfileRepository) FindByUserID(userID uint) (models.FarmerProfile, error) {
	var profile models.FarmerProfile
	result := database.DB.First(&profile, "user_id = ?", userID)
	return profile, result.Error
}

// Create inserts a new farmer profile into the database
func (r *FarmerProfileRepository) Create(profile models.FarmerProfile) (models.FarmerProfile, error) {
	result := database.DB.Create(&profile)
	return profile, result.Error
}

// DB returns the database instance
func (r *FarmerProfileRepository) DB() *gorm.DB {
	return database.DB
}
