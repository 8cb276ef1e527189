package handlers

import (
	"errors"
	"net/http"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListGroceryItems returns available items, optionally by category
func ListGroceryItems(c *gin.Context) {
	var items []models.GroceryItem
	query := config.DB.Where("is_available = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// ListGroceryCategories returns the distinct item categories
func ListGroceryCategories(c *gin.Context) {
	var categories []string
	err := config.DB.Model(&models.GroceryItem{}).
		Distinct("category").Order("category").Pluck("category", &categories).Error
	if err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetGroceryItem returns a single item
func GetGroceryItem(c *gin.Context) {
	var item models.GroceryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		failDB(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// errInsufficientStock aborts the order transaction; Item names the
// offending line for the response body.
type errInsufficientStock struct{ Item string }

func (e errInsufficientStock) Error() string {
	return "'" + e.Item + "' is out of stock or has insufficient quantity"
}

// PlaceGroceryOrder creates a grocery order. Stock is claimed with a
// conditional decrement (stock = stock - qty WHERE stock >= qty) inside
// the same transaction as the order insert, so two concurrent orders
// for the last units can never both succeed and a failed claim rolls
// the whole order back.
func PlaceGroceryOrder(c *gin.Context) {
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

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderLine
		for _, reqItem := range req.Items {
			var item models.GroceryItem
			if err := tx.First(&item, reqItem.ItemID).Error; err != nil {
				return err
			}
			if !item.IsAvailable {
				return errInsufficientStock{Item: item.Name}
			}

			res := tx.Model(&models.GroceryItem{}).
				Where("id = ? AND stock >= ?", item.ID, reqItem.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", reqItem.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errInsufficientStock{Item: item.Name}
			}

			lines = append(lines, models.OrderLine{
				ItemID:   item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: reqItem.Quantity,
			})
		}

		order = models.Order{
			UserID:          userID,
			ModuleType:      models.ModuleGrocery,
			Items:           lines,
			TotalAmount:     totalOf(lines),
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.OrderPending,
			PaymentStatus:   models.PaymentPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		var stockErr errInsufficientStock
		switch {
		case errors.As(err, &stockErr):
			fail(c, http.StatusConflict, CodeInsufficientStock, stockErr.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, CodeNotFound, "Grocery item not found")
		default:
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to place order")
		}
		return
	}

	config.Log.Info("grocery order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total", order.TotalAmount))

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}
