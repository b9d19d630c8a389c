package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/routes"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/storage"
	"github.com/codebem/plataforma-backend/internal/store"
	"github.com/codebem/plataforma-backend/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Connect the remote document store
	documents, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Error initializing document store: %v", err)
	}

	// Load application state once; everything after serves from memory
	provider := state.NewProvider(documents, logger)
	if err := provider.Load(context.Background()); err != nil {
		log.Fatalf("Error loading application state: %v", err)
	}

	// Object storage for image uploads
	objects, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("Error initializing upload storage: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.UploadMaxBytes) + 1<<20,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(app, provider, objects, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
