package database

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/agrienergy-connect/lib/catalogue"
	"github.com/agrienergy-connect/models"
	"github.com/agrienergy-connect/utils"
	"gorm.io/gorm"
)

const (
	// AdminEmail is the one address that receives the Admin role.
	AdminEmail = "admin@agriconnect.co.za"

	// StaffDomain marks organizational addresses; they receive the Employee role.
	StaffDomain = "@agriconnect.co.za"

	seedPassword = "Password123!"
)

// seedProduct describes one demonstration catalogue entry. AgeDays is how many
// days before today the product was produced.
type seedProduct struct {
	Name     string
	Category string
	Location string
	AgeDays  int
}

// seedAccount describes one baseline account. A non-empty product list marks a
// demonstration farmer that also gets a profile and catalogue.
type seedAccount struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Products  []seedProduct
}

var seedAccounts = []seedAccount{
	{Email: AdminEmail, FirstName: "System", LastName: "Administrator"},
	{Email: "employee@agriconnect.co.za", FirstName: "Emma", LastName: "Employee"},
	{
		Email:     "johnvanwyk@agrifarm.com",
		FirstName: "John",
		LastName:  "Van Wyk",
		Phone:     "082-511-6522",
		Products: []seedProduct{
			{Name: "Organic Tomatoes", Category: "Vegetables", Location: "Kwa-Zulu Natal"},
			{Name: "Free-Range Eggs", Category: "Poultry", Location: "Kwa-Zulu Natal"},
			{Name: "Organic Carrots", Category: "Vegetables", Location: "Kwa-Zulu Natal"},
		},
	},
	{
		Email:     "mariamkhwanazi@greenfields.com",
		FirstName: "Maria",
		LastName:  "Mkhwanazi",
		Phone:     "071-624-5341",
		Products: []seedProduct{
			{Name: "Artisanal Cheese", Category: "Dairy", Location: "Eastern Cape", AgeDays: 7},
			{Name: "Grass-Fed Beef", Category: "Meat", Location: "Eastern Cape", AgeDays: 28},
			{Name: "Goat Milk", Category: "Dairy", Location: "Eastern Cape"},
		},
	},
	{
		Email:     "davidwilson@agrifields.com",
		FirstName: "David",
		LastName:  "Wilson",
		Phone:     "089-537-9287",
		Products: []seedProduct{
			{Name: "Grapes", Category: "Fruit", Location: "Western Cape", AgeDays: 17},
			{Name: "Organic Apples", Category: "Fruit", Location: "Western Cape", AgeDays: 5},
			{Name: "Organic Potatoes", Category: "Vegetables", Location: "Western Cape", AgeDays: 30},
		},
	},
}

// RoleForEmail applies the deterministic seed role rule: the literal admin
// address is Admin, other organizational addresses are Employee, everyone
// else is a Farmer.
func RoleForEmail(email string) models.Role {
	lower := strings.ToLower(email)
	switch {
	case lower == AdminEmail:
		return models.RoleAdmin
	case strings.HasSuffix(lower, StaffDomain):
		return models.RoleEmployee
	default:
		return models.RoleFarmer
	}
}

// Seed brings the store to the baseline state. It is idempotent and safe to
// run on every startup: every record is created only when no row matches its
// natural key. A failing account is logged and skipped, not fatal.
func Seed(db *gorm.DB) error {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleFarmer, models.RoleEmployee} {
		if err := ensure(db, map[string]interface{}{"name": role}, &models.UserRole{Name: role}); err != nil {
			return err
		}
	}

	for _, account := range seedAccounts {
		user, err := seedUser(db, account)
		if err != nil {
			log.Printf("Seed: skipping account %s: %v", account.Email, err)
			continue
		}

		if len(account.Products) == 0 {
			continue
		}

		if err := seedFarmerCatalogue(db, account, user); err != nil {
			return err
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedUser ensures the account exists, hashing the baseline password and
// assigning the role derived from the email rule.
func seedUser(db *gorm.DB, account seedAccount) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", account.Email).First(&user)
	if result.Error == nil {
		return user, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, result.Error
	}

	if reasons := utils.ValidatePassword(seedPassword); len(reasons) > 0 {
		return user, &utils.CredentialPolicyError{Reasons: reasons}
	}

	hashed, err := utils.HashPassword(seedPassword)
	if err != nil {
		return user, err
	}

	user = models.User{
		Email:     account.Email,
		Password:  hashed,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
		Role:      RoleForEmail(account.Email),
	}
	if err := db.Create(&user).Error; err != nil {
		return user, err
	}

	log.Printf("Seed: %s user %s created", user.Role, user.Email)
	return user, nil
}

// seedFarmerCatalogue ensures the farmer's profile and demonstration products
// exist. Products are deduplicated by their natural key tuple so repeated runs
// never create duplicate rows.
func seedFarmerCatalogue(db *gorm.DB, account seedAccount, user models.User) error {
	profile := models.FarmerProfile{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}
	if err := ensure(db, map[string]interface{}{"user_id": user.ID}, &profile); err != nil {
		return err
	}

	for _, entry := range account.Products {
		date := catalogue.DateOnly(time.Now().AddDate(0, 0, -entry.AgeDays))
		product := models.Product{
			Name:           entry.Name,
			Category:       entry.Category,
			Location:       entry.Location,
			Kind:           models.ProductKindProduce,
			ProductionDate: &date,
			FarmerID:       profile.ID,
		}
		key := map[string]interface{}{
			"name":            entry.Name,
			"category":        entry.Category,
			"location":        entry.Location,
			"kind":            models.ProductKindProduce,
			"production_date": productKeyDate(&date),
		}
		if err := ensure(db, key, &product); err != nil {
			return err
		}
	}

	return nil
}

// ensure creates record unless a row already matches the natural key cond.
func ensure[T any](db *gorm.DB, cond map[string]interface{}, record *T) error {
	return db.Where(cond).FirstOrCreate(record).Error
}

// productKeyDate folds a missing production date to the epoch so undated
// products still dedup on a stable key.
func productKeyDate(date *time.Time) time.Time {
	if date == nil {
		return time.Unix(0, 0).UTC()
	}
	return *date
}
