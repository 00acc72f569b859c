package catalogue

import (
	"testing"
	"time"

	"github.com/agrienergy-connect/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestNewProduceDefaultsProductionDateToToday(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

	product := NewProduce(Listing{
		Name:     "Organic Tomatoes",
		Category: "Vegetables",
		Location: "Kwa-Zulu Natal",
	}, ProduceSpec{}, 7, now)

	assert.Equal(t, uint(7), product.FarmerID)
	assert.Equal(t, models.ProductKindProduce, product.Kind)
	if assert.NotNil(t, product.ProductionDate) {
		assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), *product.ProductionDate)
	}
}

func TestNewProduceStripsTimeOfDayFromSuppliedDate(t *testing.T) {
	supplied := time.Date(2026, time.January, 2, 13, 45, 12, 0, time.UTC)

	product := NewProduce(Listing{
		Name:     "Goat Milk",
		Category: "Dairy",
		Location: "Eastern Cape",
	}, ProduceSpec{ProductionDate: &supplied}, 1, time.Now())

	if assert.NotNil(t, product.ProductionDate) {
		assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), *product.ProductionDate)
	}
}

func TestNewProduceClearsEnergyFields(t *testing.T) {
	product := models.Product{
		Name:         "Free-Range Eggs",
		Category:     "Poultry",
		Location:     "Kwa-Zulu Natal",
		Kind:         models.ProductKindProduce,
		VendorName:   "SunVolt",
		EnergyType:   "Solar",
		PowerKW:      float64Ptr(5),
		SuitableFor:  "irrigation",
		DatasheetURL: "https://example.com/ds.pdf",
		PriceZAR:     decimalPtr("45000.00"),
	}

	Normalize(&product, 3, time.Now())

	assert.Empty(t, product.VendorName)
	assert.Empty(t, product.EnergyType)
	assert.Nil(t, product.PowerKW)
	assert.Empty(t, product.SuitableFor)
	assert.Empty(t, product.DatasheetURL)
	assert.Nil(t, product.PriceZAR)
	assert.NotNil(t, product.ProductionDate)
}

func TestNewEnergySolutionClearsProduceFields(t *testing.T) {
	date := time.Now()
	product := models.Product{
		Name:           "5kW Solar Kit",
		Category:       "Solar",
		Location:       "Gauteng",
		Kind:           models.ProductKindEnergySolution,
		ProductionDate: &date,
		Unit:           "kg",
		PricePerUnit:   decimalPtr("19.99"),
		IsOrganic:      true,
	}

	Normalize(&product, 2, time.Now())

	assert.Nil(t, product.ProductionDate)
	assert.Empty(t, product.Unit)
	assert.Nil(t, product.PricePerUnit)
	assert.False(t, product.IsOrganic)
	assert.Equal(t, "Gauteng", product.Location)
}

func TestNewEnergySolutionDefaultsBlankLocationToNational(t *testing.T) {
	for _, location := range []string{"", "   "} {
		product := NewEnergySolution(Listing{
			Name:     "Biogas Digester",
			Category: "Biogas",
			Location: location,
		}, EnergySpec{VendorName: "GreenGas"}, 4)

		assert.Equal(t, DefaultEnergyLocation, product.Location)
		assert.Equal(t, "GreenGas", product.VendorName)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	now := time.Now()

	produce := NewProduce(Listing{
		Name:     "Grapes",
		Category: "Fruit",
		Location: "Western Cape",
	}, ProduceSpec{Unit: "punnet", PricePerUnit: decimalPtr("24.50")}, 5, now)
	again := produce
	Normalize(&again, 5, now.Add(48*time.Hour))
	assert.Equal(t, produce, again)

	energy := NewEnergySolution(Listing{
		Name:     "Wind Turbine",
		Category: "Wind",
	}, EnergySpec{PowerKW: float64Ptr(10)}, 5)
	again = energy
	Normalize(&again, 5, now)
	assert.Equal(t, energy, again)
}

func TestNormalizeOverwritesClientSuppliedOwner(t *testing.T) {
	product := models.Product{
		Name:     "Organic Apples",
		Category: "Fruit",
		Location: "Western Cape",
		Kind:     models.ProductKindProduce,
		FarmerID: 99,
	}

	Normalize(&product, 2, time.Now())

	assert.Equal(t, uint(2), product.FarmerID)
}
