package services

import (
	"errors"

	"github.com/agrienergy-connect/dto"
	"github.com/agrienergy-connect/models"
	"github.com/agrienergy-connect/repositories"
	"github.com/agrienergy-connect/utils"
	"gorm.io/gorm"
)

// DefaultFarmerPassword is the starter password assigned when an employee
// provisions a farmer account without choosing one.
const DefaultFarmerPassword = "Farmer123!"

// ErrEmailTaken reports an account creation against an existing email.
var ErrEmailTaken = errors.New("an account with this email already exists")

// FarmerService handles business logic for farmer accounts and profiles
type FarmerService struct {
	userRepo    *repositories.UserRepository
	profileRepo *repositories.FarmerProfileRepository
}

// NewFarmerService creates a new farmer service instance
func NewFarmerService() *FarmerService {
	return &FarmerService{
		userRepo:    repositories.NewUserRepository(),
		profileRepo: repositories.NewFarmerProfileRepository(),
	}
}

// ListFarmers retrieves all farmer profiles with their accounts and products
func (s *FarmerService) ListFarmers() ([]models.FarmerProfile, error) {
	return s.profileRepo.FindAll()
}

// GetFarmer retrieves a single farmer profile with its products
func (s *FarmerService) GetFarmer(id uint) (models.FarmerProfile, error) {
	return s.profileRepo.FindByID(id)
}

// CreateFarmer provisions a farmer account and its profile in one
// transaction. The password defaults to DefaultFarmerPassword and is checked
// against the credential policy; every violation is reported.
func (s *FarmerService) CreateFarmer(req dto.CreateFarmerRequest) (models.FarmerProfile, error) {
	var profile models.FarmerProfile

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return profile, err
	}
	if exists {
		return profile, ErrEmailTaken
	}

	password := req.Password
	if password == "" {
		password = DefaultFarmerPassword
	}
	if reasons := utils.ValidatePassword(password); len(reasons) > 0 {
		return profile, &utils.CredentialPolicyError{Reasons: reasons}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return profile, err
	}

	err = s.profileRepo.DB().Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:     req.Email,
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Role:      models.RoleFarmer,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile = models.FarmerProfile{
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Phone:     user.Phone,
		}
		return tx.Create(&profile).Error
	})

	return profile, err
}
