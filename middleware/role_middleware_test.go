package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrienergy-connect/models"
	"github.com/gin-gonic/gin"
)

// setGinTestMode ensures Gin does not write noisy logs during tests
func setGinTestMode() { gin.SetMode(gin.TestMode) }

// withRole simulates AuthMiddleware having resolved the caller's role.
func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
}

func TestRequireRolesAllowsListedRoles(t *testing.T) {
	setGinTestMode()

	cases := []struct {
		role    string
		allowed []models.Role
		want    int
	}{
		{"Admin", []models.Role{models.RoleEmployee, models.RoleAdmin}, http.StatusOK},
		{"Employee", []models.Role{models.RoleEmployee, models.RoleAdmin}, http.StatusOK},
		{"Farmer", []models.Role{models.RoleEmployee, models.RoleAdmin}, http.StatusForbidden},
		{"Farmer", []models.Role{models.RoleFarmer}, http.StatusOK},
		{"Employee", []models.Role{models.RoleFarmer}, http.StatusForbidden},
		{"Admin", []models.Role{models.RoleFarmer}, http.StatusForbidden},
	}

	for _, tc := range cases {
		r := gin.New()
		r.GET("/guarded", withRole(tc.role), RequireRoles(tc.allowed...), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Fatalf("role %s with allowed %v: expected %d, got %d", tc.role, tc.allowed, tc.want, w.Code)
		}
	}
}

func TestRequireRolesRejectsUnauthenticated(t *testing.T) {
	setGinTestMode()

	r := gin.New()
	r.GET("/guarded", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without role in context, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	setGinTestMode()

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/secure", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	setGinTestMode()
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/secure", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}
