package router

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/wolf6905/CCG3/src/core/middleware"
	"github.com/wolf6905/CCG3/src/modules/authentication"
	"github.com/wolf6905/CCG3/src/modules/challenges"
	"github.com/wolf6905/CCG3/src/modules/chat"
	"github.com/wolf6905/CCG3/src/modules/guides"
	"github.com/wolf6905/CCG3/src/modules/leaderboard"
	"github.com/wolf6905/CCG3/src/modules/progress"
	"github.com/wolf6905/CCG3/src/modules/users"
)

// Dependencies carries the module handlers wired in main.
type Dependencies struct {
	Auth        *authentication.Handler
	Users       *users.Handler
	Progress    *progress.Handler
	Challenges  *challenges.Handler
	Chat        *chat.Handler
	Leaderboard *leaderboard.Handler
	Guides      *guides.Handler
	JWTSecret   string
}

func InitialiseAndSetupRoutes(app *fiber.App, deps *Dependencies) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1, deps)

	// WebSocket chat: authenticate from the token query param, then upgrade
	app.Use("/ws/chat", deps.Chat.WebSocketUpgrade)
	app.Get("/ws/chat", websocket.New(deps.Chat.WebSocketChat))

	routes := app.GetRoutes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		fmt.Printf("%s\t%s\n", route.Method, route.Path)
	}
}

func setupAPIV1Routes(router fiber.Router, deps *Dependencies) {
	protected := middleware.Protected(deps.JWTSecret)

	// Grouped API endpoints
	authGroup := router.Group("/auth")
	userGroup := router.Group("/users")
	gameGroup := router.Group("/game")
	guideGroup := router.Group("/guides")

	// Authentication routes
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	// User routes
	userGroup.Get("/profile", protected, deps.Users.GetProfile)
	userGroup.Post("/upload-profile-photo", protected, deps.Users.UploadProfilePhoto)

	// Game routes. The limiter sits after auth where a route has it, so the
	// limiter key sees the user_id locals set by the JWT middleware.
	gameGroup.Get("/generate-question", aiRateLimiter(), deps.Challenges.GenerateQuestion)
	gameGroup.Post("/update-progress", protected, aiRateLimiter(), deps.Progress.UpdateProgress)
	gameGroup.Get("/leaderboard", aiRateLimiter(), deps.Leaderboard.GetLeaderboard)

	// Guide routes
	guideGroup.Get("/", deps.Guides.GetGuides)
	guideGroup.Post("/complete", protected, deps.Progress.CompleteGuide)

	// Chat route (rate limited like the game group, same upstream provider)
	router.Post("/chat", aiRateLimiter(), deps.Chat.Chat)
}

// aiRateLimiter bounds requests that fan out to the completion provider,
// keyed per authenticated user with an IP fallback.
func aiRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
				return "user:" + uid
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
