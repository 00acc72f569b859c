package services

import (
	"errors"
	"strings"
	"time"

	"github.com/agrienergy-connect/dto"
	"github.com/agrienergy-connect/lib/catalogue"
	"github.com/agrienergy-connect/models"
	"github.com/agrienergy-connect/repositories"
	"gorm.io/gorm"
)

// ErrProfileNotFound reports a farmer-scoped action by an account that owns
// no farmer profile. Terminal for the request: creation flows render it as a
// field error, listing flows as not found.
var ErrProfileNotFound = errors.New("farmer profile not found")

// ErrLocationRequired reports a produce listing submitted without a location.
var ErrLocationRequired = errors.New("location is required for produce listings")

// ProductService handles business logic for the product catalogue
type ProductService struct {
	productRepo *repositories.ProductRepository
	profileRepo *repositories.FarmerProfileRepository
}

// NewProductService creates a new product service instance
func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
		profileRepo: repositories.NewFarmerProfileRepository(),
	}
}

// ListProducts retrieves the filtered, sorted catalogue
func (s *ProductService) ListProducts(filter catalogue.Filter) ([]models.Product, error) {
	return s.productRepo.FindFiltered(filter)
}

// CreateProduct resolves the caller's farmer profile, builds a normalized
// record from the kind-specific payload, and persists it. Ownership is always
// server-determined; any client-supplied farmer id is ignored.
func (s *ProductService) CreateProduct(userID uint, req dto.CreateProductRequest) (models.Product, error) {
	var product models.Product

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, ErrProfileNotFound
		}
		return product, err
	}

	listing := catalogue.Listing{
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
		ImageURL: req.ImageURL,
	}

	switch req.Kind {
	case models.ProductKindEnergySolution:
		spec := catalogue.EnergySpec{}
		if req.Energy != nil {
			spec = catalogue.EnergySpec{
				VendorName:   req.Energy.VendorName,
				EnergyType:   req.Energy.EnergyType,
				PowerKW:      req.Energy.PowerKW,
				SuitableFor:  req.Energy.SuitableFor,
				DatasheetURL: req.Energy.DatasheetURL,
				PriceZAR:     req.Energy.PriceZAR,
			}
		}
		product = catalogue.NewEnergySolution(listing, spec, profile.ID)
	default:
		if strings.TrimSpace(req.Location) == "" {
			return product, ErrLocationRequired
		}
		spec := catalogue.ProduceSpec{}
		if req.Produce != nil {
			spec = catalogue.ProduceSpec{
				ProductionDate: req.Produce.ProductionDate,
				Unit:           req.Produce.Unit,
				PricePerUnit:   req.Produce.PricePerUnit,
				IsOrganic:      req.Produce.IsOrganic,
			}
		}
		product = catalogue.NewProduce(listing, spec, profile.ID, time.Now())
	}

	return s.productRepo.Create(product)
}

// MyProducts retrieves the catalogue owned by the caller's farmer profile
func (s *ProductService) MyProducts(userID uint) ([]models.Product, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return s.productRepo.FindByFarmerID(profile.ID)
}
