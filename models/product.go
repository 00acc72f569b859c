package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductKind discriminates which optional field subset applies to a product.
type ProductKind string

const (
	ProductKindProduce        ProductKind = "produce"
	ProductKindEnergySolution ProductKind = "energy_solution"
)

// Product is a catalogue entry owned by exactly one farmer profile. Fields
// below the common block belong to a single kind; the catalogue normalizer
// guarantees the other kind's fields are zero before a record is persisted.
type Product struct {
	ID       uint        `json:"id" gorm:"primaryKey"`
	Name     string      `json:"name" gorm:"not null;index"`
	Category string      `json:"category" gorm:"not null"`
	Location string      `json:"location" gorm:"not null"`
	Kind     ProductKind `json:"kind" gorm:"type:varchar(20);not null;default:'produce'"`
	ImageURL string      `json:"imageUrl,omitempty"`

	// Produce only
	ProductionDate *time.Time       `json:"productionDate,omitempty"`
	Unit           string           `json:"unit,omitempty"`
	PricePerUnit   *decimal.Decimal `json:"pricePerUnit,omitempty" gorm:"type:decimal(18,2)"`
	IsOrganic      bool             `json:"isOrganic"`

	// Energy solution only
	VendorName   string           `json:"vendorName,omitempty"`
	EnergyType   string           `json:"energyType,omitempty"`
	PowerKW      *float64         `json:"powerKw,omitempty"`
	SuitableFor  string           `json:"suitableFor,omitempty"`
	DatasheetURL string           `json:"datasheetUrl,omitempty"`
	PriceZAR     *decimal.Decimal `json:"priceZar,omitempty" gorm:"type:decimal(18,2)"`

	FarmerID      uint           `json:"farmerId" gorm:"not null;index"`
	FarmerProfile *FarmerProfile `json:"-" gorm:"foreignKey:FarmerID"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
