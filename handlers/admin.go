package handlers

import (
	"errors"
	"net/http"
	"time"

	"superapp-api/config"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultModules = []models.Module{
	{Name: models.ModuleFood, DisplayName: "Food Delivery", Description: "Restaurant food delivery service", IsActive: true},
	{Name: models.ModuleGrocery, DisplayName: "Grocery Delivery", Description: "Quick grocery delivery service", IsActive: true},
	{Name: models.ModuleServices, DisplayName: "On-Demand Services", Description: "Home service booking", IsActive: true},
}

// InitModules upserts the three module records by name. Re-running it
// refreshes display fields but never touches an existing record's
// is_active flag, so an admin's toggle survives re-initialization.
func InitModules(c *gin.Context) {
	for _, def := range defaultModules {
		var existing models.Module
		err := config.DB.Where("name = ?", def.Name).First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"display_name": def.DisplayName,
				"description":  def.Description,
			}
			if err := config.DB.Model(&existing).Updates(updates).Error; err != nil {
				fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to update module")
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := config.DB.Create(&def).Error; err != nil {
				fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to create module")
				return
			}
		default:
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Modules initialized successfully"})
}

// ListModules returns all module flags. Public: the UI shell reads it
// before login to decide which verticals to show.
func ListModules(c *gin.Context) {
	var modules []models.Module
	if err := config.DB.Order("name").Find(&modules).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

// ToggleModule flips a module's kill switch
func ToggleModule(c *gin.Context) {
	name := models.ModuleName(c.Param("name"))

	var module models.Module
	if err := config.DB.Where("name = ?", name).First(&module).Error; err != nil {
		failDB(c, err, "Module not found")
		return
	}

	updates := map[string]interface{}{
		"is_active":  !module.IsActive,
		"updated_at": time.Now(),
	}
	if err := config.DB.Model(&module).Updates(updates).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to toggle module")
		return
	}

	config.DB.Where("name = ?", name).First(&module)
	config.Log.Info("module toggled",
		zap.String("module", string(name)),
		zap.Bool("is_active", module.IsActive))

	c.JSON(http.StatusOK, gin.H{"module": module})
}

// GetAnalytics recomputes the platform snapshot from scratch on every
// call. No caching: counts and revenue are exact at call time, at an
// O(n) scan over all-time records — acceptable for an infrequent
// admin-only operation.
func GetAnalytics(c *gin.Context) {
	var (
		totalUsers    int64
		totalOrders   int64
		totalBookings int64
		foodOrders    int64
		groceryOrders int64
	)

	db := config.DB
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalUsers).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	db.Model(&models.Order{}).Count(&totalOrders)
	db.Model(&models.Booking{}).Count(&totalBookings)
	db.Model(&models.Order{}).Where("module_type = ?", models.ModuleFood).Count(&foodOrders)
	db.Model(&models.Order{}).Where("module_type = ?", models.ModuleGrocery).Count(&groceryOrders)

	var orderRevenue, bookingRevenue float64
	db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&orderRevenue)
	db.Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&bookingRevenue)

	var modules []models.Module
	db.Order("name").Find(&modules)

	c.JSON(http.StatusOK, gin.H{
		"total_users":    totalUsers,
		"total_orders":   totalOrders,
		"total_bookings": totalBookings,
		"food_orders":    foodOrders,
		"grocery_orders": groceryOrders,
		"total_revenue":  orderRevenue + bookingRevenue,
		"modules":        modules,
	})
}

// AdminListOrders returns all orders across users — admin only
func AdminListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if module := c.Query("module"); module != "" {
		query = query.Where("module_type = ?", module)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AdminListBookings returns all bookings across users — admin only
func AdminListBookings(c *gin.Context) {
	var bookings []models.Booking
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// AdminListUsers returns all users — admin only
func AdminListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
