package services

import (
	"os"
	"testing"

	"github.com/agrienergy-connect/dto"
	"github.com/agrienergy-connect/models"
	"github.com/agrienergy-connect/utils"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsFarmerRole(t *testing.T) {
	newTestDB(t)

	user, err := Register(dto.RegisterRequest{
		Email:     "newfarmer@agrifarm.com",
		Password:  "Password123!",
		FirstName: "New",
		LastName:  "Farmer",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleFarmer, user.Role)
}

func TestRegisterEnforcesCredentialPolicy(t *testing.T) {
	newTestDB(t)

	_, err := Register(dto.RegisterRequest{
		Email:     "weak@agrifarm.com",
		Password:  "password",
		FirstName: "Weak",
		LastName:  "Password",
	})

	var policyErr *utils.CredentialPolicyError
	require.ErrorAs(t, err, &policyErr)
	require.NotEmpty(t, policyErr.Reasons)
}

func TestLoginRoundTrip(t *testing.T) {
	newTestDB(t)
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := Register(dto.RegisterRequest{
		Email:     "login@agrifarm.com",
		Password:  "Password123!",
		FirstName: "Log",
		LastName:  "In",
	})
	require.NoError(t, err)

	resp, err := Login(dto.LoginRequest{Email: "login@agrifarm.com", Password: "Password123!"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Empty(t, resp.User.Password)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.Equal(t, string(models.RoleFarmer), claims.Role)

	_, err = Login(dto.LoginRequest{Email: "login@agrifarm.com", Password: "wrong"})
	require.Error(t, err)
}
