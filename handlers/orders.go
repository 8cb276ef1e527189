package handlers

import (
	"net/http"
	"time"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/models"
	"superapp-api/statemachine"

	"github.com/gin-gonic/gin"
)

// CartLineRequest references a catalog item by ID only. Prices are
// always re-derived server-side from the catalog, never trusted from
// the client.
type CartLineRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []CartLineRequest    `json:"items"`
	DeliveryAddress string               `json:"delivery_address"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"omitempty,oneof=cash card upi"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// orderDefaults fills in delivery address (user profile) and payment
// method (cash) when the request omits them.
func orderDefaults(userID uint, req *CreateOrderRequest) error {
	if req.DeliveryAddress == "" {
		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			return err
		}
		req.DeliveryAddress = user.Address
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PayCash
	}
	return nil
}

func totalOf(lines []models.OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ListOrders returns the caller's orders for one module, newest first.
func ListOrders(module models.ModuleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		var orders []models.Order
		err := config.DB.Preload("Items").
			Where("user_id = ? AND module_type = ?", userID, module).
			Order("created_at desc").
			Find(&orders).Error
		if err != nil {
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
	}
}

// GetOrder returns one of the caller's orders. An order that exists but
// belongs to someone else is reported as not found.
func GetOrder(module models.ModuleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		var order models.Order
		err := config.DB.Preload("Items").
			Where("id = ? AND user_id = ? AND module_type = ?", c.Param("id"), userID, module).
			First(&order).Error
		if err != nil {
			failDB(c, err, "Order not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// UpdateOrderStatus moves one of the caller's orders through the state
// machine. Reaching delivered marks the order paid and stamps the
// delivery time; no other status has side effects.
func UpdateOrderStatus(module models.ModuleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, CodeValidation, err.Error())
			return
		}
		newStatus := models.OrderStatus(req.Status)

		var order models.Order
		err := config.DB.
			Where("id = ? AND user_id = ? AND module_type = ?", c.Param("id"), userID, module).
			First(&order).Error
		if err != nil {
			failDB(c, err, "Order not found")
			return
		}

		if err := statemachine.CanTransitionOrder(order.Status, newStatus); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":              CodeInvalidState,
				"error":             err.Error(),
				"current_status":    order.Status,
				"valid_next_states": statemachine.ValidOrderTransitionsFrom(order.Status),
			})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.OrderDelivered {
			now := time.Now()
			updates["payment_status"] = models.PaymentPaid
			updates["delivered_at"] = &now
		}
		if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
			fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to update order")
			return
		}

		config.DB.Preload("Items").First(&order, order.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
	}
}
