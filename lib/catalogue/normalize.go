package catalogue

import (
	"strings"
	"time"

	"github.com/agrienergy-connect/models"
	"github.com/shopspring/decimal"
)

// DefaultEnergyLocation is stamped onto energy solutions submitted without a
// location; energy vendors typically ship nationwide.
const DefaultEnergyLocation = "National"

// Listing is the kind-independent part of a new catalogue entry.
type Listing struct {
	Name     string
	Category string
	Location string
	ImageURL string
}

// ProduceSpec holds the fields that only apply to farm produce.
type ProduceSpec struct {
	ProductionDate *time.Time
	Unit           string
	PricePerUnit   *decimal.Decimal
	IsOrganic      bool
}

// EnergySpec holds the fields that only apply to energy solutions.
type EnergySpec struct {
	VendorName   string
	EnergyType   string
	PowerKW      *float64
	SuitableFor  string
	DatasheetURL string
	PriceZAR     *decimal.Decimal
}

// NewProduce constructs a normalized produce record owned by farmerID.
// A missing production date defaults to today (date only).
func NewProduce(listing Listing, spec ProduceSpec, farmerID uint, now time.Time) models.Product {
	product := models.Product{
		Name:           listing.Name,
		Category:       listing.Category,
		Location:       listing.Location,
		Kind:           models.ProductKindProduce,
		ImageURL:       listing.ImageURL,
		ProductionDate: spec.ProductionDate,
		Unit:           spec.Unit,
		PricePerUnit:   spec.PricePerUnit,
		IsOrganic:      spec.IsOrganic,
	}
	Normalize(&product, farmerID, now)
	return product
}

// NewEnergySolution constructs a normalized energy solution record owned by
// farmerID. A blank location falls back to DefaultEnergyLocation.
func NewEnergySolution(listing Listing, spec EnergySpec, farmerID uint) models.Product {
	product := models.Product{
		Name:         listing.Name,
		Category:     listing.Category,
		Location:     listing.Location,
		Kind:         models.ProductKindEnergySolution,
		ImageURL:     listing.ImageURL,
		VendorName:   spec.VendorName,
		EnergyType:   spec.EnergyType,
		PowerKW:      spec.PowerKW,
		SuitableFor:  spec.SuitableFor,
		DatasheetURL: spec.DatasheetURL,
		PriceZAR:     spec.PriceZAR,
	}
	Normalize(&product, farmerID, time.Now())
	return product
}

// Normalize stamps the server-resolved owner onto the record and enforces the
// kind rules: fields that do not apply to the record's kind are cleared, a
// produce record always carries a date-only production date, and an energy
// solution always carries a location. Applying it to an already normalized
// record changes nothing.
func Normalize(product *models.Product, farmerID uint, now time.Time) {
	product.FarmerID = farmerID

	switch product.Kind {
	case models.ProductKindEnergySolution:
		product.ProductionDate = nil
		product.Unit = ""
		product.PricePerUnit = nil
		product.IsOrganic = false
		if strings.TrimSpace(product.Location) == "" {
			product.Location = DefaultEnergyLocation
		}
	default:
		product.Kind = models.ProductKindProduce
		if product.ProductionDate == nil {
			date := DateOnly(now)
			product.ProductionDate = &date
		} else {
			date := DateOnly(*product.ProductionDate)
			product.ProductionDate = &date
		}
		product.VendorName = ""
		product.EnergyType = ""
		product.PowerKW = nil
		product.SuitableFor = ""
		product.DatasheetURL = ""
		product.PriceZAR = nil
	}
}

// DateOnly strips the time-of-day component, keeping the calendar date in t's
// location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
