package main

import (
	"os"
	"os/signal"
	"syscall"

	"stayhub/internal/adapters/http/middleware"
	"stayhub/internal/adapters/http/routes"
	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/config"
	"stayhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	_ "stayhub/docs" // Swagger docs
)

// @title StayHub API
// @version 1.0
// @description Hotel-booking reservation API: accounts, hotel catalog, bookings with guest identity documents, and the manager approval flow.

// @host localhost:5000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to auto migrate: %v", err)
	}
	logrus.Info("Database migration completed")

	// Seed staff accounts and starter catalog
	if err := config.NewSeeder(db).Run(); err != nil {
		logrus.Warnf("Failed to seed data: %v", err)
	}

	// Scheduled housekeeping
	maintenance := services.NewMaintenanceService(db, repositories.NewBookingRepository(db), cfg)
	maintenance.Start()
	defer maintenance.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "StayHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logrus.Infof("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("Error during shutdown: %v", err)
	}
	logrus.Info("Server stopped gracefully")
}
