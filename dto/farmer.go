package dto

// CreateFarmerRequest carries the fields for provisioning a farmer account
// together with its profile. When Password is empty the standard starter
// password is assigned.
type CreateFarmerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}
