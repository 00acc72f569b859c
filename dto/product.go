package dto

import (
	"time"

	"github.com/agrienergy-connect/models"
	"github.com/shopspring/decimal"
)

// ProduceFields is the payload accepted for produce listings.
type ProduceFields struct {
	ProductionDate *time.Time       `json:"productionDate"`
	Unit           string           `json:"unit"`
	PricePerUnit   *decimal.Decimal `json:"pricePerUnit"`
	IsOrganic      bool             `json:"isOrganic"`
}

// EnergyFields is the payload accepted for energy solution listings.
type EnergyFields struct {
	VendorName   string           `json:"vendorName"`
	EnergyType   string           `json:"energyType"`
	PowerKW      *float64         `json:"powerKw"`
	SuitableFor  string           `json:"suitableFor"`
	DatasheetURL string           `json:"datasheetUrl" binding:"omitempty,url"`
	PriceZAR     *decimal.Decimal `json:"priceZar"`
}

// CreateProductRequest is a tagged variant: Kind selects which payload block
// applies, and the other block is ignored. Location may be blank for energy
// solutions only (it defaults server-side).
type CreateProductRequest struct {
	Name     string             `json:"name" binding:"required"`
	Category string             `json:"category" binding:"required"`
	Location string             `json:"location"`
	Kind     models.ProductKind `json:"kind" binding:"required,oneof=produce energy_solution"`
	ImageURL string             `json:"imageUrl" binding:"omitempty,url"`
	Produce  *ProduceFields     `json:"produce"`
	Energy   *EnergyFields      `json:"energy"`
}
