package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/wolf6905/CCG3/src/core/ai"
	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/database"
	"github.com/wolf6905/CCG3/src/core/router"
	"github.com/wolf6905/CCG3/src/modules/authentication"
	"github.com/wolf6905/CCG3/src/modules/challenges"
	"github.com/wolf6905/CCG3/src/modules/chat"
	"github.com/wolf6905/CCG3/src/modules/guides"
	"github.com/wolf6905/CCG3/src/modules/leaderboard"
	"github.com/wolf6905/CCG3/src/modules/progress"
	"github.com/wolf6905/CCG3/src/modules/users"
)

func main() {
	// Initialize the Fiber app
	app := fiber.New()

	// Middleware
	app.Use(recover.New())   // Recover middleware to handle panics
	app.Use(cors.New())      // CORS middleware for cross-origin requests
	app.Use(requestid.New()) // Middleware to generate unique request IDs

	// Load environment configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment variables")
	}

	// Connect to the database and cache
	db := database.ConnectDB(cfg)
	rdb := database.ConnectRedis(cfg)

	aiClient := ai.NewClient(cfg.OpenRouterAPIKey, cfg.AppURL)
	boardCache := leaderboard.NewCache(rdb)

	// Set up routes
	deps := &router.Dependencies{
		Auth:        authentication.NewHandler(db, cfg),
		Users:       users.NewHandler(db, cfg),
		Progress:    progress.NewHandler(db, boardCache),
		Challenges:  challenges.NewHandler(aiClient),
		Chat:        chat.NewHandler(aiClient, cfg),
		Leaderboard: leaderboard.NewHandler(db, boardCache),
		Guides:      guides.NewHandler(),
		JWTSecret:   cfg.JWTSecret,
	}
	router.InitialiseAndSetupRoutes(app, deps)

	// Start the server
	log.Fatal(app.Listen(fmt.Sprintf(":%s", cfg.AppPort)))
}
