package repositories

import (
	"github.com/agrienergy-connect/database"
	"github.com/agrienergy-connect/lib/catalogue"
	"github.com/agrienergy-connect/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new product repository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindFiltered retrieves products matching the catalogue filter, in the
// canonical catalogue order.
func (r *ProductRepository) FindFiltered(filter catalogue.Filter) ([]models.Product, error) {
	var products []models.Product
	query := filter.Apply(database.DB.Model(&models.Product{}))
	result := query.Find(&products)
	return products, result.Error
}

// FindByFarmerID retrieves all products owned by a farmer profile, in the
// canonical catalogue order.
func (r *ProductRepository) FindByFarmerID(farmerID uint) ([]models.Product, error) {
	var products []models.Product
	query := catalogue.ApplySort(database.DB.Where("farmer_id = ?", farmerID))
	result := query.Find(&products)
	return products, result.Error
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := database.DB.Create(&product)
	return product, result.Error
}
