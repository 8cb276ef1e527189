package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/models"
	"superapp-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer wires a fresh router against a throwaway database.
// The pool is capped at one connection so sqlite never sees
// overlapping writers from concurrent test requests.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, config.Load())
	config.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func enableAllModules(t *testing.T) {
	t.Helper()
	for _, m := range []models.Module{
		{Name: models.ModuleFood, DisplayName: "Food Delivery", IsActive: true},
		{Name: models.ModuleGrocery, DisplayName: "Grocery Delivery", IsActive: true},
		{Name: models.ModuleServices, DisplayName: "On-Demand Services", IsActive: true},
	} {
		require.NoError(t, config.DB.Create(&m).Error)
	}
}

func createUser(t *testing.T, email string, role models.UserRole) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Address:      "42 Default Street",
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return &user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	code, _ := body["code"].(string)
	return code
}

func seedGroceryItem(t *testing.T, name string, price float64, stock int) *models.GroceryItem {
	t.Helper()
	item := models.GroceryItem{
		Name:        name,
		Category:    "Test",
		Price:       price,
		Stock:       stock,
		IsAvailable: true,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return &item
}

func seedRestaurant(t *testing.T, prices ...float64) *models.Restaurant {
	t.Helper()
	r := models.Restaurant{Name: "Testaurant", Cuisine: "Fusion", IsActive: true}
	for i, p := range prices {
		r.Menu = append(r.Menu, models.MenuItem{
			Name:        "Dish " + string(rune('A'+i)),
			Price:       p,
			IsAvailable: true,
		})
	}
	require.NoError(t, config.DB.Create(&r).Error)
	return &r
}

func seedService(t *testing.T, providerUserID uint, price float64, available bool) *models.Service {
	t.Helper()
	s := models.Service{
		Name:     "Home Cleaning",
		Category: "Cleaning",
		IsActive: true,
		Providers: []models.ServiceProvider{
			{ProviderID: providerUserID, Name: "Pat Cleaner", Price: price, IsAvailable: available},
		},
	}
	require.NoError(t, config.DB.Create(&s).Error)
	return &s
}

func currentStock(t *testing.T, itemID uint) int {
	t.Helper()
	var item models.GroceryItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	return item.Stock
}
