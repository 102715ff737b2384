package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wolf6905/CCG3/src/core/helpers"
)

// Protected middleware for validating JWT tokens
func Protected(jwtSecret string) fiber.Handler {
	if jwtSecret == "" {
		panic("JWT_SECRET is not set in the environment variables") // Panic to prevent startup
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(jwtSecret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			// Extract user claims and attach user_id to the context
			user := c.Locals("user").(*jwt.Token)
			claims := user.Claims.(jwt.MapClaims)
			if userID, ok := claims["sub"].(string); ok {
				c.Locals("user_id", userID)
				return c.Next()
			}
			return helpers.HandleError(c, fiber.StatusUnauthorized, "User ID missing in token", nil)
		},
	})
}

// jwtError handles JWT-related errors
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Missing or malformed JWT", err)
	}
	return helpers.HandleError(c, fiber.StatusForbidden, "Invalid or expired JWT", err)
}
