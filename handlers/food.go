package handlers

import (
	"net/http"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListRestaurants returns active restaurants, optionally filtered
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("is_active = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Find(&restaurants).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant with its menu
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, c.Param("id")).Error; err != nil {
		failDB(c, err, "Restaurant not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// PlaceFoodOrder creates a food order. Each cart line is resolved
// against the live menu so the price snapshot comes from the catalog,
// not from the client.
func PlaceFoodOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	if len(req.Items) == 0 {
		fail(c, http.StatusBadRequest, CodeEmptyCart, "Cart is empty")
		return
	}
	if err := orderDefaults(userID, &req); err != nil {
		failDB(c, err, "User not found")
		return
	}

	var lines []models.OrderLine
	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.ItemID).Error; err != nil {
			failDB(c, err, "Menu item not found")
			return
		}
		if !menuItem.IsAvailable {
			fail(c, http.StatusNotFound, CodeNotFound, "Menu item '"+menuItem.Name+"' is not available")
			return
		}
		lines = append(lines, models.OrderLine{
			ItemID:   menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: reqItem.Quantity,
		})
	}

	order := models.Order{
		UserID:          userID,
		ModuleType:      models.ModuleFood,
		Items:           lines,
		TotalAmount:     totalOf(lines),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to place order")
		return
	}

	config.Log.Info("food order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total", order.TotalAmount))

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}
