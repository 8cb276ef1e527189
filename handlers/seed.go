package handlers

import (
	"net/http"

	"superapp-api/config"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData loads a small demo catalog for all three modules.
// Upserts by name, so running it repeatedly is safe.
func SeedDemoData(c *gin.Context) {
	provider, err := ensureProviderUser()
	if err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to seed provider account")
		return
	}

	restaurants := []models.Restaurant{
		{
			Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.5,
			Description: "Authentic Italian pizzas and pasta", DeliveryTime: 30, DeliveryFee: 20,
			Menu: []models.MenuItem{
				{Name: "Margherita Pizza", Description: "Classic cheese pizza with tomato sauce", Price: 299, Category: "Pizza", IsAvailable: true},
				{Name: "Pasta Carbonara", Description: "Creamy pasta with bacon", Price: 249, Category: "Pasta", IsAvailable: true},
				{Name: "Garlic Bread", Description: "Fresh baked garlic bread", Price: 99, Category: "Sides", IsAvailable: true},
			},
		},
		{
			Name: "Curry Express", Cuisine: "Indian", Rating: 4.6,
			Description: "Authentic Indian curries and biryanis", DeliveryTime: 35, DeliveryFee: 25,
			Menu: []models.MenuItem{
				{Name: "Butter Chicken", Description: "Creamy tomato-based curry", Price: 299, Category: "Curry", IsAvailable: true},
				{Name: "Chicken Biryani", Description: "Fragrant rice with spiced chicken", Price: 349, Category: "Biryani", IsAvailable: true},
				{Name: "Naan Bread", Description: "Fresh baked naan", Price: 49, Category: "Bread", IsAvailable: true},
			},
		},
	}
	for i := range restaurants {
		r := &restaurants[i]
		r.IsActive = true
		var existing models.Restaurant
		if err := config.DB.Where("name = ?", r.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(r).Error; err != nil {
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to seed restaurants")
			return
		}
	}

	groceries := []models.GroceryItem{
		{Name: "Milk", Category: "Dairy", Price: 50, Unit: "liter", Stock: 100, Description: "Fresh whole milk"},
		{Name: "Bread", Category: "Bakery", Price: 30, Unit: "pack", Stock: 50, Description: "White bread"},
		{Name: "Eggs", Category: "Dairy", Price: 60, Unit: "dozen", Stock: 75, Description: "Farm fresh eggs"},
		{Name: "Rice", Category: "Grains", Price: 80, Unit: "kg", Stock: 40, Description: "Basmati rice"},
		{Name: "Tomatoes", Category: "Vegetables", Price: 40, Unit: "kg", Stock: 60, Description: "Fresh tomatoes"},
		{Name: "Apples", Category: "Fruits", Price: 120, Unit: "kg", Stock: 35, Description: "Fresh red apples"},
	}
	for i := range groceries {
		g := &groceries[i]
		g.IsAvailable = true
		var existing models.GroceryItem
		if err := config.DB.Where("name = ?", g.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(g).Error; err != nil {
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to seed groceries")
			return
		}
	}

	services := []models.Service{
		{
			Name: "Home Cleaning", Category: "Cleaning", Description: "Professional home cleaning service",
			Providers: []models.ServiceProvider{
				{ProviderID: provider.ID, Name: "John Cleaner", Rating: 4.8, Experience: 5, Price: 500, IsAvailable: true},
			},
		},
		{
			Name: "Plumbing", Category: "Repairs", Description: "Expert plumbing services",
			Providers: []models.ServiceProvider{
				{ProviderID: provider.ID, Name: "Mike Plumber", Rating: 4.6, Experience: 8, Price: 800, IsAvailable: true},
			},
		},
		{
			Name: "Haircut", Category: "Beauty", Description: "Professional haircut and styling",
			Providers: []models.ServiceProvider{
				{ProviderID: provider.ID, Name: "Sarah Stylist", Rating: 4.9, Experience: 3, Price: 300, IsAvailable: true},
			},
		},
	}
	for i := range services {
		s := &services[i]
		s.IsActive = true
		var existing models.Service
		if err := config.DB.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(s).Error; err != nil {
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to seed services")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Demo data seeded successfully",
		"restaurants": len(restaurants),
		"groceries":   len(groceries),
		"services":    len(services),
	})
}

func ensureProviderUser() (*models.User, error) {
	var provider models.User
	err := config.DB.Where("email = ?", "provider@example.com").First(&provider).Error
	if err == nil {
		return &provider, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	provider = models.User{
		Name:         "Service Provider",
		Email:        "provider@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleServiceProvider,
		Phone:        "5555555555",
	}
	if err := config.DB.Create(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}
