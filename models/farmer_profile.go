package models

import (
	"time"

	"gorm.io/gorm"
)

// FarmerProfile ties a Farmer account to the products it owns. Contact fields
// are denormalized copies of the account for display. At most one profile
// exists per account; removing a profile cascades to its products.
type FarmerProfile struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"uniqueIndex;not null"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Email     string         `json:"email" gorm:"not null"`
	FirstName string         `json:"firstName" gorm:"not null"`
	LastName  string         `json:"lastName" gorm:"not null"`
	Phone     string         `json:"phone"`
	Products  []Product      `json:"products,omitempty" gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
