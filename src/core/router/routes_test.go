package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The limiter sits after the auth middleware on authenticated routes, so its
// key generator must see user_id locals and bucket each user separately.
func TestAIRateLimiterKeysByAuthenticatedUser(t *testing.T) {
	app := fiber.New()
	app.Post("/hit", func(c *fiber.Ctx) error {
		c.Locals("user_id", c.Get("X-User"))
		return c.Next()
	}, aiRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	hit := func(user string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/hit", nil)
		if user != "" {
			req.Header.Set("X-User", user)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 30; i++ {
		if status := hit("user-a"); status != fiber.StatusOK {
			t.Fatalf("request %d for user-a = %d, want 200", i+1, status)
		}
	}
	if status := hit("user-a"); status != fiber.StatusTooManyRequests {
		t.Fatalf("request 31 for user-a = %d, want 429", status)
	}

	// A different user from the same address has its own bucket
	if status := hit("user-b"); status != fiber.StatusOK {
		t.Fatalf("first request for user-b = %d, want 200", status)
	}
}
