package handlers

import (
	"net/http"
	"time"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/models"
	"superapp-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServices returns active services with their providers
func ListServices(c *gin.Context) {
	var services []models.Service
	query := config.DB.Preload("Providers").Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&services).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(services), "services": services})
}

// ListServiceCategories returns the distinct service categories
func ListServiceCategories(c *gin.Context) {
	var categories []string
	err := config.DB.Model(&models.Service{}).
		Distinct("category").Order("category").Pluck("category", &categories).Error
	if err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetService returns a single service with its providers
func GetService(c *gin.Context) {
	var service models.Service
	if err := config.DB.Preload("Providers").First(&service, c.Param("id")).Error; err != nil {
		failDB(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

type CreateBookingRequest struct {
	ServiceID     uint                 `json:"service_id" binding:"required"`
	ProviderID    uint                 `json:"provider_id" binding:"required"`
	ScheduledDate string               `json:"scheduled_date" binding:"required"`
	ScheduledTime string               `json:"scheduled_time" binding:"required"`
	Address       string               `json:"address"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"omitempty,oneof=cash card upi"`
}

// CreateBooking books a provider for a service. The amount is the
// provider's catalog price; providers are not consumed, only their
// availability flag gates booking.
func CreateBooking(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ServiceID).Error; err != nil {
		failDB(c, err, "Service not found")
		return
	}

	var provider models.ServiceProvider
	err := config.DB.
		Where("service_id = ? AND provider_id = ?", service.ID, req.ProviderID).
		First(&provider).Error
	if err != nil || !provider.IsAvailable {
		fail(c, http.StatusConflict, CodeProviderUnavailable, "Service provider not available")
		return
	}

	address := req.Address
	if address == "" {
		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			failDB(c, err, "User not found")
			return
		}
		address = user.Address
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PayCash
	}

	booking := models.Booking{
		UserID:        userID,
		ServiceID:     service.ID,
		ProviderID:    provider.ProviderID,
		ServiceName:   service.Name,
		ProviderName:  provider.Name,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Address:       address,
		Amount:        provider.Price,
		PaymentMethod: method,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to create booking")
		return
	}

	config.Log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("user_id", userID),
		zap.String("service", booking.ServiceName))

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": booking})
}

// ListBookings returns the caller's bookings, newest first
func ListBookings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var bookings []models.Booking
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&bookings).Error
	if err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// GetBooking returns one of the caller's bookings
func GetBooking(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var booking models.Booking
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&booking).Error
	if err != nil {
		failDB(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBookingStatus moves one of the caller's bookings through the
// state machine. Reaching completed marks the booking paid and stamps
// the completion time; no other status has side effects.
func UpdateBookingStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	newStatus := models.BookingStatus(req.Status)

	var booking models.Booking
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&booking).Error
	if err != nil {
		failDB(c, err, "Booking not found")
		return
	}

	if err := statemachine.CanTransitionBooking(booking.Status, newStatus); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":              CodeInvalidState,
			"error":             err.Error(),
			"current_status":    booking.Status,
			"valid_next_states": statemachine.ValidBookingTransitionsFrom(booking.Status),
		})
		return
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.BookingCompleted {
		now := time.Now()
		updates["payment_status"] = models.PaymentPaid
		updates["completed_at"] = &now
	}
	if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to update booking")
		return
	}

	config.DB.First(&booking, booking.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": booking})
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddFeedback attaches a rating to a completed booking, exactly once.
func AddFeedback(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	var booking models.Booking
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&booking).Error
	if err != nil {
		failDB(c, err, "Booking not found")
		return
	}

	if booking.Status != models.BookingCompleted {
		fail(c, http.StatusUnprocessableEntity, CodeInvalidState,
			"Can only provide feedback for completed bookings")
		return
	}
	if booking.FeedbackRating != nil {
		fail(c, http.StatusUnprocessableEntity, CodeInvalidState,
			"Feedback has already been submitted for this booking")
		return
	}

	updates := map[string]interface{}{
		"feedback_rating":  req.Rating,
		"feedback_comment": req.Comment,
	}
	if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
		fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Failed to save feedback")
		return
	}

	config.DB.First(&booking, booking.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted", "booking": booking})
}
