package main

import (
	"log"
	"net/http"

	"superapp-api/config"
	"superapp-api/middleware"
	"superapp-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := config.InitLogger(); err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer config.Log.Sync()

	gin.SetMode(config.C.GinMode)

	if err := config.InitDB(); err != nil {
		config.Log.Fatal("failed to init database", zap.Error(err))
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for the web/mobile shells
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "SuperApp Commerce API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r)

	config.Log.Info("server starting", zap.String("port", config.C.Port))
	if err := r.Run(":" + config.C.Port); err != nil {
		config.Log.Fatal("server failed", zap.Error(err))
	}
}
