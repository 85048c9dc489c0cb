package routes

import (
	"time"

	"stayhub/internal/adapters/http/handlers"
	"stayhub/internal/adapters/http/middleware"
	"stayhub/internal/adapters/persistence/repositories"
	"stayhub/internal/config"
	"stayhub/internal/core/services"
	"stayhub/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	// Media store
	uploader := storage.New(cfg)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, uploader)
	hotelService := services.NewHotelService(hotelRepo)
	bookingService := services.NewBookingService(bookingRepo, userRepo, hotelRepo, uploader, cfg)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	hotelHandler := handlers.NewHotelHandler(hotelService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Locally stored uploads (dev driver only)
	if cfg.Upload.Driver == "local" {
		app.Static("/uploads", cfg.Upload.LocalDir)
	}

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(apiV1, authHandler, cfg)
	setupUserRoutes(apiV1, userHandler, cfg)
	setupHotelRoutes(apiV1, hotelHandler, cfg)
	setupBookingRoutes(apiV1, bookingHandler, cfg)
	setupDashboardRoutes(apiV1, dashboardHandler, cfg)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public, behind the stricter limiter
	router.Post("/signup", middleware.AuthRateLimiter(), handler.SignUp)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupUserRoutes configures profile and admin user routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler, cfg *config.Config) {
	router.Post("/profile/complete",
		middleware.AuthMiddleware(cfg),
		middleware.UserOnly(),
		handler.CompleteProfile)

	// Admin user management
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	userRoutes.Get("/", handler.ListUsers)
	userRoutes.Get("/:id", handler.GetUser)
	userRoutes.Put("/:id/role", handler.SetRole)
	userRoutes.Delete("/:id", handler.DeleteUser)
}

// setupHotelRoutes configures hotel catalog routes. Reads are open;
// writes require the HOTEL_MANAGER or ADMIN role.
func setupHotelRoutes(router fiber.Router, handler *handlers.HotelHandler, cfg *config.Config) {
	router.Get("/hotels", middleware.CacheControl(5*time.Minute), handler.List)
	router.Get("/hotels/:id", middleware.CacheControl(5*time.Minute), handler.GetByID)

	router.Post("/hotels", middleware.AuthMiddleware(cfg), middleware.ManagerOrAdmin(), handler.Create)
	router.Put("/hotels/:id", middleware.AuthMiddleware(cfg), middleware.ManagerOrAdmin(), handler.Update)
	router.Delete("/hotels/:id", middleware.AuthMiddleware(cfg), middleware.ManagerOrAdmin(), handler.Delete)
}

// setupBookingRoutes configures booking lifecycle routes
func setupBookingRoutes(router fiber.Router, handler *handlers.BookingHandler, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg)

	router.Post("/booking", auth, middleware.UserOnly(), handler.Create)
	router.Get("/bookings", auth, middleware.UserOnly(), middleware.NoCacheHeaders(), handler.ListOwn)
	router.Get("/get-bookings-by-status/:status", auth, middleware.RoleMiddleware("HOTEL_MANAGER"), handler.ListByStatus)
	router.Post("/update-booking-status/:id", auth, middleware.RoleMiddleware("HOTEL_MANAGER"), handler.UpdateStatus)

	router.Get("/bookings/:id", auth, handler.GetByID)
	router.Put("/bookings/:id", auth, middleware.ManagerOrAdmin(), handler.Update)
	router.Delete("/bookings/:id", auth, middleware.ManagerOrAdmin(), handler.Delete)
}

// setupDashboardRoutes configures the manager dashboard route
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler, cfg *config.Config) {
	router.Get("/dashboard",
		middleware.AuthMiddleware(cfg),
		middleware.ManagerOrAdmin(),
		handler.Summary)
}
