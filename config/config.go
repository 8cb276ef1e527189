package config

import (
	"fmt"

	"superapp-api/models"

	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"superapp.db"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"superapp_super_secret_2024"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
}

var (
	C   Config
	DB  *gorm.DB
	Log *zap.Logger

	// JWTSecret used to sign tokens
	JWTSecret []byte
)

// Load parses the environment into C and derives the JWT secret.
func Load() error {
	if err := env.Parse(&C); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	JWTSecret = []byte(C.JWTSecret)
	return nil
}

// InitLogger sets up the process-wide zap logger.
func InitLogger() error {
	var err error
	if C.GinMode == "release" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

// InitDB opens the database and migrates all models.
func InitDB() error {
	var err error
	DB, err = gorm.Open(sqlite.Open(C.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := MigrateDB(DB); err != nil {
		return err
	}

	Log.Info("database connected and migrated", zap.String("path", C.DatabasePath))
	return nil
}

// MigrateDB runs auto-migration for every model. Exposed separately so
// tests can migrate their own database instance.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.GroceryItem{},
		&models.Service{},
		&models.ServiceProvider{},
		&models.Order{},
		&models.OrderLine{},
		&models.Booking{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
