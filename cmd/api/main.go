package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"golang.org/x/time/rate"

	"emlakpark_backend/internal/controller"
	"emlakpark_backend/internal/middleware"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/config"
	"emlakpark_backend/pkg/cron"
	"emlakpark_backend/pkg/email"
	"emlakpark_backend/pkg/seed"
	"emlakpark_backend/pkg/utils/jwt"
	"emlakpark_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App, s store.Store) {
	authController := controller.NewAuthController(s)
	listingController := controller.NewListingController(s)
	catalogController := controller.NewCatalogController(s)
	agentController := controller.NewAgentController(s)
	userController := controller.NewUserController(s)
	contactController := controller.NewContactController(s)
	settingsController := controller.NewSettingsController(s)
	statsController := controller.NewStatsController(s)
	uploadController := controller.NewUploadController(s)

	// One contact message per 10 seconds per IP, small burst.
	contactLimiter := middleware.NewRateLimiter(rate.Every(10*time.Second), 3)

	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", authController.Logout)
	api.Get("/me", middleware.AuthMiddleware(), authController.GetMe)
	api.Put("/me", middleware.AuthMiddleware(), authController.UpdateMe)

	// Public Listing Routes
	listings := api.Group("/listings")
	listings.Get("/", listingController.List)
	listings.Get("/featured", listingController.Featured)
	listings.Get("/:id", listingController.Get)

	// Listing mutations: creation needs a session, edits need admin
	listings.Post("/", middleware.AuthMiddleware(), listingController.Create)
	listings.Put("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), listingController.Update)
	listings.Delete("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), listingController.Delete)
	listings.Post("/:id/images", middleware.AuthMiddleware(), middleware.AdminMiddleware(), uploadController.UploadListingImage)

	// Catalog Routes
	api.Get("/cities", catalogController.ListCities)
	api.Get("/property-types", catalogController.ListPropertyTypes)

	// Public Agent Directory
	agents := api.Group("/agents")
	agents.Get("/", agentController.List)
	agents.Get("/:id", agentController.Get)
	agents.Get("/:id/listings", agentController.Listings)

	// Contact form (rate limited) and admin review
	api.Post("/contact", contactLimiter.Limit(), contactController.Create)
	api.Get("/contact", middleware.AuthMiddleware(), middleware.AdminMiddleware(), contactController.List)

	// Site settings: public reads, admin writes
	settings := api.Group("/settings")
	settings.Get("/contact-info", settingsController.GetContactInfo)
	settings.Get("/working-hours", settingsController.GetWorkingHours)
	settings.Put("/contact-info", middleware.AuthMiddleware(), middleware.AdminMiddleware(), settingsController.UpdateContactInfo)
	settings.Put("/working-hours", middleware.AuthMiddleware(), middleware.AdminMiddleware(), settingsController.UpdateWorkingHours)

	// Admin back office
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	admin.Get("/users", userController.List)
	admin.Post("/users", userController.Create)
	admin.Put("/users/:id", userController.Update)
	admin.Delete("/users/:id", userController.Delete)
	admin.Get("/stats", statsController.Dashboard)
}

func main() {
	cfg := config.Load()

	jwt.SetSecret(cfg.JWT.Secret)

	if cfg.Email.ResendAPIKey != "" && cfg.Email.AdminEmail != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.AdminEmail); err != nil {
			log.Printf("Could not initialize email service: %v", err)
		}
	} else {
		log.Println("Email service disabled (RESEND_API_KEY / ADMIN_EMAIL not set)")
	}

	if err := storage.InitStorage(cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		log.Printf("Image storage disabled: %v", err)
	}

	// The store lives only for the process lifetime; every start
	// reseeds the same sample data.
	s := store.NewMemoryStore()
	if err := seed.Seed(s, cfg.Seed.ListingCount); err != nil {
		log.Fatal("Could not seed store:", err)
	}

	cron.InitListingCountCron(s)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, s)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
