package routes

import (
	"superapp-api/handlers"
	"superapp-api/middleware"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// The UI shell reads module flags before login
		public.GET("/admin/modules", handlers.ListModules)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Food delivery module ───────────────────────────────────────
	food := r.Group("/api/food")
	food.Use(middleware.ModuleRequired(models.ModuleFood))
	{
		food.GET("/restaurants", handlers.ListRestaurants)
		food.GET("/restaurants/:id", handlers.GetRestaurant)

		orders := food.Group("")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("/orders", handlers.PlaceFoodOrder)
			orders.GET("/orders", handlers.ListOrders(models.ModuleFood))
			orders.GET("/orders/:id", handlers.GetOrder(models.ModuleFood))
			orders.PUT("/orders/:id/status", handlers.UpdateOrderStatus(models.ModuleFood))
		}
	}

	// ── Grocery delivery module ────────────────────────────────────
	grocery := r.Group("/api/grocery")
	grocery.Use(middleware.ModuleRequired(models.ModuleGrocery))
	{
		grocery.GET("/items", handlers.ListGroceryItems)
		grocery.GET("/items/:id", handlers.GetGroceryItem)
		grocery.GET("/categories", handlers.ListGroceryCategories)

		orders := grocery.Group("")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("/orders", handlers.PlaceGroceryOrder)
			orders.GET("/orders", handlers.ListOrders(models.ModuleGrocery))
			orders.GET("/orders/:id", handlers.GetOrder(models.ModuleGrocery))
			orders.PUT("/orders/:id/status", handlers.UpdateOrderStatus(models.ModuleGrocery))
		}
	}

	// ── On-demand services module ──────────────────────────────────
	services := r.Group("/api/services")
	services.Use(middleware.ModuleRequired(models.ModuleServices))
	{
		services.GET("/services", handlers.ListServices)
		services.GET("/services/:id", handlers.GetService)
		services.GET("/categories", handlers.ListServiceCategories)

		bookings := services.Group("")
		bookings.Use(middleware.AuthRequired())
		{
			bookings.POST("/bookings", handlers.CreateBooking)
			bookings.GET("/bookings", handlers.ListBookings)
			bookings.GET("/bookings/:id", handlers.GetBooking)
			bookings.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)
			bookings.POST("/bookings/:id/feedback", handlers.AddFeedback)
		}
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/modules/init", handlers.InitModules)
		admin.PUT("/modules/:name/toggle", handlers.ToggleModule)
		admin.GET("/analytics", handlers.GetAnalytics)
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/bookings", handlers.AdminListBookings)
		admin.GET("/users", handlers.AdminListUsers)
		admin.POST("/seed", handlers.SeedDemoData)
	}
}
