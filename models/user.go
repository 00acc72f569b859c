package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleFarmer   Role = "Farmer"
	RoleEmployee Role = "Employee"
)

// UserRole is a row in the fixed role lookup table. The three roles are
// provisioned by the seed routine and never updated afterwards.
type UserRole struct {
	ID   uint `json:"id" gorm:"primaryKey"`
	Name Role `json:"name" gorm:"type:varchar(16);uniqueIndex;not null"`
}

// User represents an authenticatable account in the system
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Phone     string         `json:"phone"`
	Role      Role           `json:"role" gorm:"type:varchar(16);default:'Farmer'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// FullName returns the display name for the account.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
